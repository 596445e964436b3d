package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Tenant payment states.
const (
	PaymentStatusCurrent = "Current"
	PaymentStatusLate    = "Late"
	PaymentStatusOverdue = "Overdue"
	PaymentStatusPartial = "Partial"
)

type Tenant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	FullName string `json:"fullName" gorm:"size:255"`
	Email    string `json:"email" gorm:"size:150"`
	Phone    string `json:"phone" gorm:"size:50"`

	MoveInDate      *time.Time `gorm:"column:move_in_date" json:"moveInDate,omitempty"`
	SecurityDeposit float64    `gorm:"column:security_deposit" json:"securityDeposit"`

	// NegotiatedPrice overrides the room's standard rental price when set.
	NegotiatedPrice *float64 `gorm:"column:negotiated_price" json:"negotiatedPrice,omitempty"`

	LastPaymentDate *time.Time `gorm:"column:last_payment_date" json:"lastPaymentDate,omitempty"`
	PaymentStatus   string     `gorm:"column:payment_status;size:32" json:"paymentStatus"`

	PlannedMoveOut *time.Time `gorm:"column:planned_move_out" json:"plannedMoveOut,omitempty"`
	ActualMoveOut  *time.Time `gorm:"column:actual_move_out" json:"actualMoveOut,omitempty"`
	LeaseEndDate   *time.Time `gorm:"column:lease_end_date" json:"leaseEndDate,omitempty"`

	EmergencyContact string `gorm:"column:emergency_contact;size:255" json:"emergencyContact"`
	Notes            string `gorm:"type:text" json:"notes"`

	Active bool `gorm:"default:true;index" json:"active"`
}

// EffectiveRent returns the negotiated price when one is set, otherwise the
// room's standard rental price. Every surface that renders rent (emails,
// calendar events, exports) goes through this.
func (t *Tenant) EffectiveRent() float64 {
	if t.NegotiatedPrice != nil && *t.NegotiatedPrice > 0 {
		return *t.NegotiatedPrice
	}
	return t.Room.RentalPrice
}

// FirstName is used when building receipt references.
func (t *Tenant) FirstName() string {
	parts := strings.Fields(strings.TrimSpace(t.FullName))
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
