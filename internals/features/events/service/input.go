package service

import (
	"strings"
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/helpers/apperror"

	"github.com/shopspring/decimal"
)

type EventInput struct {
	Nama         string
	Deskripsi    *string
	Tipe         string // kosong → penggalangan_dana (create) / tidak berubah (update)
	TanggalMulai time.Time
}

type TransactionInput struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	Tanggal     time.Time
}

type RecipientInput struct {
	Nama         string
	Alamat       *string
	NoHP         *string
	JenisBantuan *string
	Jumlah       *string
	Keterangan   *string
}

type CommitteeInput struct {
	Nama    string
	Jabatan *string
	NoHP    *string
}

func (in EventInput) validate() (tipe string, err error) {
	if strings.TrimSpace(in.Nama) == "" || in.TanggalMulai.IsZero() {
		return "", apperror.Invalid("Nama dan tanggal mulai harus diisi")
	}
	tipe = strings.TrimSpace(in.Tipe)
	if tipe != "" && !model.ValidType(tipe) {
		return "", apperror.Invalid(`Tipe event harus "%s" atau "%s"`, model.TypeFundraising, model.TypeDistribution)
	}
	return tipe, nil
}

func (in TransactionInput) validate() (balance.Direction, error) {
	if strings.TrimSpace(in.Type) == "" || in.Amount.IsZero() || strings.TrimSpace(in.Description) == "" || in.Tanggal.IsZero() {
		return "", apperror.Invalid("Type, amount, description, dan tanggal harus diisi")
	}
	dir, ok := balance.ParseDirection(in.Type)
	if !ok {
		return "", apperror.Invalid(`Type harus "%s" atau "%s"`, balance.In, balance.Out)
	}
	if !balance.StorableAmount(in.Amount) {
		return "", apperror.Invalid("Amount harus lebih dari 0 dengan maksimal 2 angka desimal dan tidak melebihi %s", balance.MaxAmount.StringFixed(balance.AmountScale))
	}
	return dir, nil
}

func (in RecipientInput) validate() error {
	if strings.TrimSpace(in.Nama) == "" {
		return apperror.Invalid("Nama penerima harus diisi")
	}
	return nil
}

func (in CommitteeInput) validate() error {
	if strings.TrimSpace(in.Nama) == "" {
		return apperror.Invalid("Nama panitia harus diisi")
	}
	return nil
}

// optional: string kosong/spasi → nil
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
