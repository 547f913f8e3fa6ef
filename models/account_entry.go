package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue categories. Closed enum used for bucketing on the accounts dashboard.
const (
	CategoryRoom       = "room"
	CategoryRestaurant = "restaurant"
	CategoryEvent      = "event"
	CategoryService    = "service"
	CategoryMisc       = "misc"
)

// AccountEntry is a direct revenue row (room accounts and misc income posted by
// the front desk). Restaurant and event revenue live in their own tables and are
// merged in by the revenue aggregator.
type AccountEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category      string          `gorm:"size:50;index" json:"category"`
	Description   string          `gorm:"size:255" json:"description"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`

	GuestName  string `gorm:"size:255" json:"guest"`
	RoomNumber string `gorm:"size:50" json:"room"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryRoom, CategoryRestaurant, CategoryEvent, CategoryService, CategoryMisc:
		return true
	}
	return false
}
