package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusReserved    = "reserved"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	// Nullable so rooms can be created before their type is assigned.
	RoomTypeID *uint `json:"room_type_id,omitempty" gorm:"column:room_type_id"`

	RoomNumber string `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`
	Status     string `json:"status" gorm:"size:50;default:available"`

	NightlyRate decimal.Decimal `json:"nightly_rate" gorm:"type:decimal(20,4);default:0"`
	Description string          `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
