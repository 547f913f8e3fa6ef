package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BookingStatusBooked     = "booked"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint  `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID  *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	Status        string `gorm:"column:status;size:64" json:"status"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`
	Nights   int        `gorm:"column:nights" json:"nights"`

	// base_amount = nights x room nightly rate, fixed at creation time.
	BaseAmount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"base_amount"`
	AdvanceAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"advance_amount"`

	Guest    Guest     `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room     Room      `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}
