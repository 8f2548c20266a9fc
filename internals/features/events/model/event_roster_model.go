package model

import "time"

// EventRecipientModel: penerima bantuan sebuah event
type EventRecipientModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"                           json:"id"`
	EventID      int64     `gorm:"column:event_id;not null;index:idx_event_recipients_event_id" json:"event_id"`
	Nama         string    `gorm:"column:nama;type:varchar(255);not null"                       json:"nama"`
	Alamat       *string   `gorm:"column:alamat;type:text"                                      json:"alamat"`
	NoHP         *string   `gorm:"column:no_hp;type:varchar(20)"                                json:"no_hp"`
	JenisBantuan *string   `gorm:"column:jenis_bantuan;type:varchar(100)"                       json:"jenis_bantuan"`
	Jumlah       *string   `gorm:"column:jumlah;type:varchar(100)"                              json:"jumlah"`
	Keterangan   *string   `gorm:"column:keterangan;type:text"                                  json:"keterangan"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime"            json:"created_at"`

	Event *EventModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventRecipientModel) TableName() string {
	return "event_recipients"
}

// EventCommitteeModel: anggota panitia event
type EventCommitteeModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"                          json:"id"`
	EventID   int64     `gorm:"column:event_id;not null;index:idx_event_committee_event_id" json:"event_id"`
	Nama      string    `gorm:"column:nama;type:varchar(255);not null"                      json:"nama"`
	Jabatan   *string   `gorm:"column:jabatan;type:varchar(100)"                            json:"jabatan"`
	NoHP      *string   `gorm:"column:no_hp;type:varchar(20)"                               json:"no_hp"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime"           json:"created_at"`

	Event *EventModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventCommitteeModel) TableName() string {
	return "event_committee"
}
