package events

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeEventSeeds(t *testing.T) {
	data := `[
		{"nama": "Renovasi", "tanggal_mulai": "2025-01-05",
		 "transactions": [{"type": "masuk", "amount": 1500, "description": "infaq", "tanggal": "2025-01-10"}]},
		{"nama": "Santunan", "tipe": "distribusi", "tanggal_mulai": "2025-03-01"}
	]`
	seeds, err := DecodeEventSeeds([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(seeds) != 2 {
		t.Fatalf("len = %d", len(seeds))
	}
	if seeds[0].Tipe != "penggalangan_dana" {
		t.Fatalf("default tipe = %q", seeds[0].Tipe)
	}
	if !seeds[0].Transactions[0].Amount.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("amount = %s", seeds[0].Transactions[0].Amount)
	}
}

func TestDecodeEventSeedsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{`, "decode JSON"},
		{"empty nama", `[{"nama": " ", "tanggal_mulai": "2025-01-01"}]`, "nama kosong"},
		{"bad tipe", `[{"nama": "a", "tipe": "lain", "tanggal_mulai": "2025-01-01"}]`, "tipe"},
		{"bad date", `[{"nama": "a", "tanggal_mulai": "01-01-2025"}]`, "tanggal_mulai"},
		{"bad direction", `[{"nama": "a", "tanggal_mulai": "2025-01-01", "transactions": [{"type": "x", "amount": 1, "tanggal": "2025-01-01"}]}]`, "type transaksi"},
		{"three decimals", `[{"nama": "a", "tanggal_mulai": "2025-01-01", "transactions": [{"type": "masuk", "amount": 100.005, "tanggal": "2025-01-01"}]}]`, "amount"},
		{"zero amount", `[{"nama": "a", "tanggal_mulai": "2025-01-01", "transactions": [{"type": "masuk", "amount": 0, "tanggal": "2025-01-01"}]}]`, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEventSeeds([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestBundledSeedFileIsValid(t *testing.T) {
	data, err := os.ReadFile("data_events.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeEventSeeds(data); err != nil {
		t.Fatal(err)
	}
}
