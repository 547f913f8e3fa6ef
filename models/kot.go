package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KOT order lifecycle: open -> closed (bill generated) or open -> cancelled.
// closed and cancelled are terminal.
const (
	KOTStatusOpen      = "open"
	KOTStatusClosed    = "closed"
	KOTStatusCancelled = "cancelled"
)

type KOTOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderNumber string `gorm:"size:64;uniqueIndex" json:"order_number"`
	TableNumber string `gorm:"size:20" json:"table_number"`
	OrderType   string `gorm:"size:50;default:dine-in" json:"order_type"`
	Status      string `gorm:"size:20;default:open;index" json:"status"`

	// Totals are written once at bill generation and never recomputed.
	Total decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	GST   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gst"`

	Notes datatypes.JSON `gorm:"column:notes" json:"notes,omitempty"`

	Items []KOTItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type KOTItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"order_id"`

	Name     string          `gorm:"size:255;not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	Quantity int             `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}

type KOTBill struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"order_id"`

	BillNumber string `gorm:"size:64;uniqueIndex" json:"bill_number"`

	Subtotal decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"subtotal"`
	GST      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"gst"`
	Total    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`

	PaymentMethod string `gorm:"size:50" json:"payment_method"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Order KOTOrder `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}
