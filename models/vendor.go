package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Vendor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	// Free-form validated strings; formats checked at the API boundary.
	AccountNumber string `gorm:"size:34" json:"account_number"`
	IFSCCode      string `gorm:"size:11" json:"ifsc_code"`
	UPIID         string `gorm:"size:100" json:"upi_id"`

	OutstandingAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"outstanding_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Bills []VendorBill `gorm:"foreignKey:VendorID" json:"bills,omitempty"`
}

const (
	VendorBillStatusUnpaid  = "unpaid"
	VendorBillStatusPartial = "partial"
	VendorBillStatusPaid    = "paid"
)

type VendorBill struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VendorID   uint      `gorm:"index;not null" json:"vendor_id"`
	BillNumber string    `gorm:"size:64" json:"bill_number"`
	BillDate   time.Time `json:"bill_date"`

	Total  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`
	Status string          `gorm:"size:50;default:unpaid" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	Payments []VendorPayment `gorm:"foreignKey:BillID" json:"payments,omitempty"`
}

type VendorPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BillID uint            `gorm:"index;not null" json:"bill_id"`
	Amount decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Method string          `gorm:"size:50" json:"method"`
	PaidAt time.Time       `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}

// VendorLedgerRow is the per-bill billed/paid/balance view. It is computed by an
// aggregate query, not stored.
type VendorLedgerRow struct {
	BillID     uint            `json:"bill_id"`
	BillNumber string          `json:"bill_number"`
	Billed     decimal.Decimal `json:"billed"`
	Paid       decimal.Decimal `json:"paid"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
}
