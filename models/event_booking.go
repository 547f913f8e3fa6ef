package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventBooking is a banquet/function booking. Its amount feeds the revenue
// aggregator under the "event" category.
type EventBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventName  string    `gorm:"size:255" json:"event_name"`
	ClientName string    `gorm:"size:255" json:"client_name"`
	EventDate  time.Time `json:"event_date"`

	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`
	Status        string          `gorm:"size:50;default:booked" json:"status"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
