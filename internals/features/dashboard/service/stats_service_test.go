package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/helpers/apperror"

	"github.com/shopspring/decimal"
)

type fakeSource struct {
	mu     sync.Mutex
	ranges [][2]*time.Time
	err    error
}

func (f *fakeSource) KasTotals(_ context.Context, from, to *time.Time) (balance.Summary, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, [2]*time.Time{from, to})
	f.mu.Unlock()
	if from == nil {
		return balance.FromTotals(decimal.NewFromInt(5000000), decimal.NewFromInt(1250000)), nil
	}
	return balance.FromTotals(decimal.NewFromInt(800000), decimal.NewFromInt(200000)), nil
}

func (f *fakeSource) CountEvents(_ context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if status == "aktif" {
		return 3, nil
	}
	return 7, nil
}

func TestMonthRange(t *testing.T) {
	jkt := time.FixedZone("WIB", 7*3600)
	tests := []struct {
		name        string
		now         time.Time
		first, last string
	}{
		{"mid month", time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), "2025-06-01", "2025-06-30"},
		{"leap february", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		// 31 Jan 20:00 UTC sudah 1 Feb di WIB
		{"rolls into next month", time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC), "2025-02-01", "2025-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthRange(tt.now, jkt)
			if first.Format("2006-01-02") != tt.first || last.Format("2006-01-02") != tt.last {
				t.Fatalf("got %s..%s", first.Format("2006-01-02"), last.Format("2006-01-02"))
			}
		})
	}
}

func TestStats(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, time.UTC)
	got, err := svc.Stats(context.Background(), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got.Periode != "2025-06" ||
		!got.TotalPemasukan.Equal(decimal.NewFromInt(800000)) ||
		!got.TotalPengeluaran.Equal(decimal.NewFromInt(200000)) ||
		!got.SaldoKas.Equal(decimal.NewFromInt(3750000)) ||
		got.EventAktif != 3 || got.EventSelesai != 7 {
		t.Fatalf("stats = %+v", got)
	}
	if len(src.ranges) != 2 {
		t.Fatalf("kas queries = %d", len(src.ranges))
	}
}

func TestStatsFailure(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("db down")}, nil)
	_, err := svc.Stats(context.Background(), time.Now())
	if apperror.KindOf(err) != apperror.Internal {
		t.Fatalf("err = %v", err)
	}
}
