package service

import (
	"context"
	"time"

	eventModel "halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/helpers/apperror"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Source: query agregat untuk dashboard
type Source interface {
	// KasTotals: total masuk/keluar kas masjid; from/to nil → tanpa batas.
	KasTotals(ctx context.Context, from, to *time.Time) (balance.Summary, error)
	CountEvents(ctx context.Context, status string) (int64, error)
}

type Stats struct {
	Periode          string          `json:"periode"`
	TotalPemasukan   decimal.Decimal `json:"total_pemasukan"`
	TotalPengeluaran decimal.Decimal `json:"total_pengeluaran"`
	SaldoKas         decimal.Decimal `json:"saldo_kas"`
	EventAktif       int64           `json:"event_aktif"`
	EventSelesai     int64           `json:"event_selesai"`
}

type Service struct {
	src Source
	loc *time.Location
}

func NewService(src Source, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{src: src, loc: loc}
}

// MonthRange: hari pertama & terakhir bulan berjalan di zona loc, sebagai tanggal (UTC).
func MonthRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	t := now.In(loc)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Stats menjalankan query paralel; satu gagal → semuanya dibatalkan.
func (s *Service) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	from, to := MonthRange(now, s.loc)
	out := &Stats{Periode: from.Format("2006-01")}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.src.KasTotals(gctx, &from, &to)
		if err != nil {
			return err
		}
		out.TotalPemasukan, out.TotalPengeluaran = sum.TotalIn, sum.TotalOut
		return nil
	})
	g.Go(func() error {
		sum, err := s.src.KasTotals(gctx, nil, nil)
		if err != nil {
			return err
		}
		out.SaldoKas = sum.Balance
		return nil
	})
	g.Go(func() error {
		n, err := s.src.CountEvents(gctx, eventModel.StatusActive)
		out.EventAktif = n
		return err
	})
	g.Go(func() error {
		n, err := s.src.CountEvents(gctx, eventModel.StatusCompleted)
		out.EventSelesai = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Wrap(apperror.Internal, err, "Terjadi kesalahan saat mengambil data dashboard")
	}
	return out, nil
}
