package model

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLogModel struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"          json:"id"`
	UserID    int64          `gorm:"column:user_id;not null;index:idx_audit_logs_user_id" json:"user_id"`
	Action    string         `gorm:"column:action;type:text;not null"            json:"action"`
	Meta      datatypes.JSON `gorm:"column:meta;type:jsonb"                      json:"meta,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime;index:idx_audit_logs_created_at" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
