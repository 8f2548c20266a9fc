package dto

import (
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/events/service"
	helper "halodkm_backend/internals/helpers"

	"github.com/shopspring/decimal"
)

// 🔹 Request transaksi event
type TransactionRequest struct {
	Type        string          `json:"type"        validate:"required,oneof=masuk keluar"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=500"`
	Tanggal     string          `json:"tanggal"     validate:"required"`
}

func (r *TransactionRequest) ToInput() (service.TransactionInput, error) {
	tgl, err := helper.ParseYMD(r.Tanggal)
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Tanggal:     tgl,
	}, nil
}

type TransactionResponse struct {
	ID          int64           `json:"id"`
	EventID     int64           `json:"event_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Tanggal     string          `json:"tanggal"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToTransactionResponse(m *model.EventKasModel) TransactionResponse {
	return TransactionResponse{
		ID:          m.ID,
		EventID:     m.EventID,
		Type:        m.Type,
		Amount:      m.Amount,
		Description: m.Description,
		Tanggal:     m.Tanggal.Format(helper.DateLayout),
		CreatedAt:   m.CreatedAt,
	}
}

func ToTransactionResponseList(rows []model.EventKasModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToTransactionResponse(&rows[i]))
	}
	return out
}
