package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LeaveStatusPending    = "Pending"
	LeaveStatusHRApproved = "HR-Approved"
	LeaveStatusApproved   = "Approved"
	LeaveStatusRejected   = "Rejected"

	LeaveTypeEarned = "EL"
	LeaveTypeSick   = "SL"
	LeaveTypeCasual = "CL"
	LeaveTypeLOP    = "LOP"
)

type LeaveRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `gorm:"index;not null" json:"staff_id"`
	Staff   Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	Days      int    `gorm:"not null;default:1" json:"days"`
	LeaveType string `gorm:"size:20;default:EL" json:"leave_type"`
	Reason    string `gorm:"type:text" json:"reason"`

	Status string `gorm:"size:20;default:Pending;index" json:"status"`

	// Filled at approval time. Computed defaults, overridable by the approver.
	LOPDays         int             `gorm:"default:0" json:"lop_days"`
	SalaryDeduction decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"salary_deduction"`

	ApprovedBy      *uint   `json:"approved_by,omitempty"`
	RejectionReason *string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
