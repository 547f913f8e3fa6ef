package services

import (
	"encoding/json"
	"time"

	"resort-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record appends one audit row. Append-only: nothing in this service updates
// or deletes existing rows.
func (s *AuditService) Record(actor, action, tableName, recordID string, details map[string]interface{}) error {
	row := models.AuditLog{
		Actor:     actor,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
	}
	if len(details) > 0 {
		if raw, err := json.Marshal(details); err == nil {
			row.Details = datatypes.JSON(raw)
		}
	}
	return s.DB.Create(&row).Error
}

type AuditQuery struct {
	From      *time.Time
	To        *time.Time
	TableName string
	Actor     string
	Limit     int
}

func (s *AuditService) Query(q AuditQuery) ([]models.AuditLog, error) {
	db := s.DB.Order("created_at DESC")
	if q.From != nil {
		db = db.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("created_at < ?", *q.To)
	}
	if q.TableName != "" {
		db = db.Where("table_name = ?", q.TableName)
	}
	if q.Actor != "" {
		db = db.Where("actor = ?", q.Actor)
	}
	limit := clampAuditLimit(q.Limit)

	var logs []models.AuditLog
	err := db.Limit(limit).Find(&logs).Error
	return logs, err
}

// clampAuditLimit: default 200 when unset, hard cap at 500.
func clampAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return 200
	case limit > 500:
		return 500
	}
	return limit
}
