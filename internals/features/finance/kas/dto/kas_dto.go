package dto

import (
	"time"

	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/features/finance/kas/model"
	helper "halodkm_backend/internals/helpers"

	"github.com/shopspring/decimal"
)

// 🔹 Request create/update transaksi kas masjid
type KasRequest struct {
	Type        string          `json:"type"        validate:"required,oneof=masuk keluar"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=500"`
	Category    *string         `json:"category"    validate:"omitempty,max=100"`
	Tanggal     string          `json:"tanggal"     validate:"required"`
}

// 🔹 Response satu baris kas
type KasResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    *string         `json:"category"`
	Tanggal     string          `json:"tanggal"`
	EventID     *int64          `json:"event_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type KasListResponse struct {
	Data    []KasResponse   `json:"data"`
	Summary balance.Summary `json:"summary"`
}

func ToKasResponse(m *model.KasMasjidModel) KasResponse {
	return KasResponse{
		ID:          m.ID,
		Type:        m.Type,
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		Tanggal:     m.Tanggal.Format(helper.DateLayout),
		EventID:     m.EventID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToKasResponseList(rows []model.KasMasjidModel) []KasResponse {
	out := make([]KasResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToKasResponse(&rows[i]))
	}
	return out
}
