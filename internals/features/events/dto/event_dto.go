package dto

import (
	"time"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/events/service"
	"halodkm_backend/internals/features/finance/balance"
	helper "halodkm_backend/internals/helpers"

	"github.com/shopspring/decimal"
)

// 🔹 Request create/update event
type EventRequest struct {
	Nama         string  `json:"nama"          validate:"required,max=255"`
	Deskripsi    *string `json:"deskripsi"`
	Tipe         string  `json:"tipe"          validate:"omitempty,oneof=penggalangan_dana distribusi"`
	TanggalMulai string  `json:"tanggal_mulai" validate:"required"`
}

// ToInput: tanggal_mulai diparse di sini, error → 400
func (r *EventRequest) ToInput() (service.EventInput, error) {
	tgl, err := helper.ParseYMD(r.TanggalMulai)
	if err != nil {
		return service.EventInput{}, err
	}
	return service.EventInput{
		Nama:         r.Nama,
		Deskripsi:    r.Deskripsi,
		Tipe:         r.Tipe,
		TanggalMulai: tgl,
	}, nil
}

// 🔹 Response event
type EventResponse struct {
	ID             int64     `json:"id"`
	Nama           string    `json:"nama"`
	Deskripsi      *string   `json:"deskripsi"`
	Tipe           string    `json:"tipe"`
	TanggalMulai   string    `json:"tanggal_mulai"`
	TanggalSelesai *string   `json:"tanggal_selesai"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type EventListItemResponse struct {
	EventResponse
	balance.Summary
	TotalRecipients int64 `json:"total_recipients"`
}

type EventDetailResponse struct {
	Event        EventResponse         `json:"event"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      balance.Summary       `json:"summary"`
}

type CompleteEventResponse struct {
	TransferredAmount decimal.Decimal `json:"transferred_amount"`
}

func ToEventResponse(m *model.EventModel) EventResponse {
	resp := EventResponse{
		ID:           m.ID,
		Nama:         m.Nama,
		Deskripsi:    m.Deskripsi,
		Tipe:         m.Tipe,
		TanggalMulai: m.TanggalMulai.Format(helper.DateLayout),
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
	if m.TanggalSelesai != nil {
		s := m.TanggalSelesai.Format(helper.DateLayout)
		resp.TanggalSelesai = &s
	}
	return resp
}

func ToEventListResponse(items []service.EventListItem) []EventListItemResponse {
	out := make([]EventListItemResponse, 0, len(items))
	for i := range items {
		out = append(out, EventListItemResponse{
			EventResponse:   ToEventResponse(&items[i].Event),
			Summary:         items[i].Summary,
			TotalRecipients: items[i].TotalRecipients,
		})
	}
	return out
}

func ToEventDetailResponse(d *service.EventDetail) EventDetailResponse {
	return EventDetailResponse{
		Event:        ToEventResponse(&d.Event),
		Transactions: ToTransactionResponseList(d.Transactions),
		Summary:      d.Summary,
	}
}
