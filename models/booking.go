package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Guest booking states.
const (
	BookingStatusInquiry    = "Inquiry"
	BookingStatusReserved   = "Reserved"
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "Checked-In"
	BookingStatusCheckedOut = "Checked-Out"
	BookingStatusCancelled  = "Cancelled"
	BookingStatusNoShow     = "No-Show"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`

	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	DailyRate    float64    `gorm:"column:daily_rate" json:"daily_rate"`
	CheckIn      time.Time  `gorm:"column:check_in" json:"check_in"`
	CheckOut     time.Time  `gorm:"column:check_out" json:"check_out"`
	Nights       int        `gorm:"column:nights" json:"nights"`
	TotalAmount  float64    `gorm:"column:total_amount" json:"total_amount"`
	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	GuestCount int    `gorm:"column:guest_count;default:1" json:"guest_count"`
	GuestName  string `gorm:"size:255" json:"guest_name"`
	GuestEmail string `gorm:"size:150" json:"guest_email"`
	GuestPhone string `gorm:"size:50" json:"guest_phone"`

	Purpose       string `gorm:"size:255" json:"purpose"`
	PaymentStatus string `gorm:"column:payment_status;size:32" json:"payment_status"`
	Status        string `gorm:"size:32;default:Inquiry" json:"status"`
	Source        string `gorm:"size:64" json:"source"`
	Notes         string `gorm:"type:text" json:"notes"`
}

// Blocking reports whether this booking keeps its room unavailable for the
// dates it covers. Cancelled, checked-out and no-show bookings do not.
func (b *Booking) Blocking() bool {
	switch {
	case strings.EqualFold(b.Status, BookingStatusCancelled),
		strings.EqualFold(b.Status, BookingStatusCheckedOut),
		strings.EqualFold(b.Status, BookingStatusNoShow):
		return false
	}
	return true
}
