package model

import (
	"time"
)

// Tipe event
const (
	TypeFundraising  = "penggalangan_dana"
	TypeDistribution = "distribusi"
)

// Status event. aktif → selesai, tidak ada transisi balik.
const (
	StatusActive    = "aktif"
	StatusCompleted = "selesai"
)

func ValidType(t string) bool {
	return t == TypeFundraising || t == TypeDistribution
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusCompleted
}

type EventModel struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"                                    json:"id"`
	Nama           string     `gorm:"column:nama;type:varchar(255);not null"                                json:"nama"`
	Deskripsi      *string    `gorm:"column:deskripsi;type:text"                                            json:"deskripsi"`
	Tipe           string     `gorm:"column:tipe;type:varchar(30);not null;default:'penggalangan_dana'"     json:"tipe"`
	TanggalMulai   time.Time  `gorm:"column:tanggal_mulai;type:date;not null"                               json:"tanggal_mulai"`
	TanggalSelesai *time.Time `gorm:"column:tanggal_selesai;type:date"                                      json:"tanggal_selesai"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:'aktif';index:idx_events_status" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`

	// NOTE:
	// - tanggal_selesai terisi ⇔ status = 'selesai'; dijaga lewat CHECK di migration
	//   (ck_events_completion_date), tidak bisa diekspresikan via tag GORM.
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) IsCompleted() bool {
	return e.Status == StatusCompleted
}
