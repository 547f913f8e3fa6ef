package models

import "time"

// ResortSetting is a single-row table; name/address/GSTIN appear on printed
// KOT receipts.
type ResortSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	GSTIN   string `gorm:"size:20" json:"gstin"`
	Website string `gorm:"size:255" json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
