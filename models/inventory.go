package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string          `gorm:"size:255;not null" json:"name"`
	Unit      string          `gorm:"size:50" json:"unit"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`

	// low stock: stock <= threshold; out of stock: stock == 0
	Threshold int `gorm:"not null;default:0" json:"threshold"`

	VendorID *uint  `gorm:"index" json:"vendor_id,omitempty"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusApproved = "approved"
	PurchaseStatusRejected = "rejected"
	PurchaseStatusReceived = "received"
)

type PurchaseRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ItemID   uint          `gorm:"index;not null" json:"item_id"`
	Item     InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity int           `gorm:"not null" json:"quantity"`

	RequestedBy string `gorm:"size:255" json:"requested_by"`
	Status      string `gorm:"size:50;default:pending;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
