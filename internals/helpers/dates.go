package helper

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseYMD menerima "2006-01-02" (atau RFC3339) dan mengembalikan tanggal tengah malam UTC.
func ParseYMD(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		rt, rerr := time.Parse(time.RFC3339, s)
		if rerr != nil {
			return time.Time{}, err
		}
		t = rt
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseYMDPtr: string kosong → nil
func ParseYMDPtr(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseYMD(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// JakartaLocation: fallback UTC kalau tzdata tidak tersedia
func JakartaLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.UTC
}
