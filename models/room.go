package models

import (
	"gorm.io/gorm"
)

// Room lifecycle states.
const (
	RoomStatusOccupied    = "Occupied"
	RoomStatusVacant      = "Vacant"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusReserved    = "Reserved"
)

type Room struct {
	gorm.Model

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`
	Type       string `json:"type"`
	Status     string `json:"status" gorm:"size:32;default:Vacant"`

	// RentalPrice is the standard monthly rent; DailyRate applies to guest bookings.
	RentalPrice  float64 `json:"rentalPrice" gorm:"column:rental_price"`
	DailyRate    float64 `json:"dailyRate" gorm:"column:daily_rate"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`
}
