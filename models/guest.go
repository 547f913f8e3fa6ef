package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName string `gorm:"size:255" json:"full_name"`

	// Phone is stored in normalized form: leading zero + 10 digits.
	// Intake looks a guest up by this value before inserting a new row.
	Phone string `gorm:"size:20;index" json:"phone"`

	Email   string `gorm:"size:150" json:"email"`
	Address string `gorm:"type:text" json:"address"`

	IDType   string `gorm:"size:50" json:"id_type"`
	IDNumber string `gorm:"size:100" json:"id_number"`

	Status string `gorm:"size:50;default:active" json:"status"`

	Bookings []Booking `gorm:"foreignKey:GuestID" json:"bookings,omitempty"`
}
