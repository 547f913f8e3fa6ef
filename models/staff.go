package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName    string `gorm:"size:255;not null" json:"full_name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Department  string `gorm:"size:100" json:"department"`
	Designation string `gorm:"size:100" json:"designation"`

	// Nullable: salary deduction is 0 when no salary is on record.
	MonthlySalary *decimal.Decimal `gorm:"type:decimal(20,4)" json:"monthly_salary,omitempty"`

	JoinedAt *time.Time `json:"joined_at,omitempty"`
	Status   string     `gorm:"size:50;default:active" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
