package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	auditService "halodkm_backend/internals/features/audit/service"
	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/features/finance/kas/model"
	"halodkm_backend/internals/helpers/apperror"
	"halodkm_backend/internals/helpers/identity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      balance.Direction
}

// Store adalah akses data kas_masjid.
type Store interface {
	List(ctx context.Context, f Filter, limit, offset int) ([]model.KasMasjidModel, int64, error)
	Summary(ctx context.Context) (balance.Summary, error)
	Find(ctx context.Context, id int64) (*model.KasMasjidModel, error)
	Create(ctx context.Context, m *model.KasMasjidModel) error
	// Update & Delete hanya menyentuh baris manual (event_id IS NULL).
	Update(ctx context.Context, m *model.KasMasjidModel) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Input struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	Category    *string
	Tanggal     time.Time
}

type ListResult struct {
	Rows    []model.KasMasjidModel
	Total   int64
	Summary balance.Summary
}

type Service struct {
	store Store
	audit auditService.Sink
}

func NewService(store Store, sink auditService.Sink) *Service {
	return &Service{store: store, audit: sink}
}

func (s *Service) List(ctx context.Context, f Filter, limit, offset int) (*ListResult, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, apperror.Invalid(`Type harus "masuk" atau "keluar"`)
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return nil, apperror.Invalid("end_date tidak boleh sebelum start_date")
	}
	rows, total, err := s.store.List(ctx, f, limit, offset)
	if err != nil {
		return nil, internal(err, "Gagal mengambil transaksi kas")
	}
	sum, err := s.store.Summary(ctx)
	if err != nil {
		return nil, internal(err, "Gagal menghitung saldo kas")
	}
	return &ListResult{Rows: rows, Total: total, Summary: sum}, nil
}

func (s *Service) Create(ctx context.Context, caller identity.Caller, in Input) (*model.KasMasjidModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	dir, err := validate(in)
	if err != nil {
		return nil, err
	}
	row := &model.KasMasjidModel{
		Type:        string(dir),
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Category:    normalizeCategory(in.Category),
		Tanggal:     in.Tanggal,
	}
	if err := s.store.Create(ctx, row); err != nil {
		return nil, internal(err, "Gagal menyimpan transaksi kas")
	}
	s.record(ctx, caller, fmt.Sprintf("Menambah transaksi kas: %s %s - %s", row.Type, balance.FormatIDR(row.Amount), row.Description), row.ID)
	return row, nil
}

func (s *Service) Update(ctx context.Context, caller identity.Caller, id int64, in Input) (*model.KasMasjidModel, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	dir, err := validate(in)
	if err != nil {
		return nil, err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsEventTransfer() {
		return nil, apperror.Conflictf("Transaksi transfer event tidak dapat diubah")
	}

	existing.Type = string(dir)
	existing.Amount = in.Amount
	existing.Description = strings.TrimSpace(in.Description)
	existing.Category = normalizeCategory(in.Category)
	existing.Tanggal = in.Tanggal

	n, err := s.store.Update(ctx, existing)
	if err != nil {
		return nil, internal(err, "Gagal memperbarui transaksi kas")
	}
	if n == 0 {
		return nil, apperror.NotFoundf("Transaksi tidak ditemukan")
	}
	s.record(ctx, caller, fmt.Sprintf("Mengupdate transaksi kas ID %d: %s %s - %s", id, existing.Type, balance.FormatIDR(existing.Amount), existing.Description), id)
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, caller identity.Caller, id int64) error {
	if err := caller.Require(); err != nil {
		return err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsEventTransfer() {
		return apperror.Conflictf("Transaksi transfer event tidak dapat dihapus")
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return internal(err, "Gagal menghapus transaksi kas")
	}
	if n == 0 {
		return apperror.NotFoundf("Transaksi tidak ditemukan")
	}
	s.record(ctx, caller, fmt.Sprintf("Menghapus transaksi kas: %s %s", existing.Type, balance.FormatIDR(existing.Amount)), id)
	return nil
}

func (s *Service) find(ctx context.Context, id int64) (*model.KasMasjidModel, error) {
	row, err := s.store.Find(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("Transaksi tidak ditemukan")
	}
	if err != nil {
		return nil, internal(err, "Gagal mengambil transaksi kas")
	}
	return row, nil
}

func (s *Service) record(ctx context.Context, caller identity.Caller, action string, id int64) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, auditService.Entry{
		UserID: caller.ID,
		Action: action,
		Meta:   map[string]any{"kas_id": id},
	})
}

func validate(in Input) (balance.Direction, error) {
	if in.Type == "" || strings.TrimSpace(in.Description) == "" || in.Tanggal.IsZero() {
		return "", apperror.Invalid("Type, amount, description, dan tanggal harus diisi")
	}
	dir, ok := balance.ParseDirection(in.Type)
	if !ok {
		return "", apperror.Invalid(`Type harus "masuk" atau "keluar"`)
	}
	if !balance.StorableAmount(in.Amount) {
		return "", apperror.Invalid("Amount harus lebih dari 0 dengan maksimal 2 angka desimal dan tidak melebihi %s", balance.MaxAmount.StringFixed(balance.AmountScale))
	}
	return dir, nil
}

func normalizeCategory(c *string) *string {
	if c == nil {
		return nil
	}
	v := strings.TrimSpace(*c)
	if v == "" {
		return nil
	}
	return &v
}

func internal(err error, msg string) error {
	log.Printf("[ERROR] %s: %v", msg, err)
	return apperror.Wrap(apperror.Internal, err, msg)
}
