package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog rows are append-only. Written by the audit middleware on every
// mutating API call; never updated or deleted by application code.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Actor     string `gorm:"size:150;index" json:"actor"`
	Action    string `gorm:"size:100" json:"action"`
	TableName string `gorm:"size:100;index" json:"table_name"`
	RecordID  string `gorm:"size:64" json:"record_id"`

	Details datatypes.JSON `json:"details,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
