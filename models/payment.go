package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentKindAdvance    = "advance"
	PaymentKindSettlement = "settlement"
)

// Payment is one row per payment event against a booking or guest.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint `gorm:"index;column:booking_id" json:"booking_id,omitempty"`
	GuestID   *uint `gorm:"index;column:guest_id" json:"guest_id,omitempty"`

	Amount decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Method string          `gorm:"size:50" json:"method"`
	Kind   string          `gorm:"size:50;default:settlement" json:"kind"`
	Status string          `gorm:"size:50;default:completed" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
