package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKasModel: transaksi milik satu event (buku kas event).
type EventKasModel struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"                      json:"id"`
	EventID     int64           `gorm:"column:event_id;not null;index:idx_event_kas_event_id"  json:"event_id"`
	Type        string          `gorm:"column:type;type:varchar(10);not null"                  json:"type"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"              json:"amount"`
	Description string          `gorm:"column:description;type:text;not null"                  json:"description"`
	Tanggal     time.Time       `gorm:"column:tanggal;type:date;not null"                      json:"tanggal"`
	CreatedAt   time.Time       `gorm:"column:created_at;type:timestamptz;autoCreateTime"      json:"created_at"`

	// Riwayat keuangan tidak ikut terhapus: FK RESTRICT
	Event *EventModel `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (EventKasModel) TableName() string {
	return "event_kas"
}
