package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const CategoryTransferEvent = "Transfer Event"

// KasMasjidModel: buku kas organisasi (tidak pernah ditutup).
type KasMasjidModel struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"             json:"id"`
	Type        string          `gorm:"column:type;type:varchar(10);not null"          json:"type"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"      json:"amount"`
	Description string          `gorm:"column:description;type:text;not null"          json:"description"`
	Category    *string         `gorm:"column:category;type:varchar(100)"              json:"category"`
	Tanggal     time.Time       `gorm:"column:tanggal;type:date;not null;index:idx_kas_masjid_tanggal" json:"tanggal"`

	// Diisi hanya untuk transfer sisa dana event; unik → satu event maksimal satu transfer.
	EventID *int64 `gorm:"column:event_id;uniqueIndex:ux_kas_masjid_event_id" json:"event_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (KasMasjidModel) TableName() string {
	return "kas_masjid"
}

// IsEventTransfer: baris hasil penyelesaian event
func (m *KasMasjidModel) IsEventTransfer() bool {
	return m.EventID != nil
}
