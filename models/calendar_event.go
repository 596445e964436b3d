package models

import "time"

// RentDueTitlePrefix keys rent-due events so regeneration can bulk-clear
// previous runs idempotently.
const RentDueTitlePrefix = "Rent Due:"

type CalendarEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string    `gorm:"size:255;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartAt     time.Time `gorm:"column:start_at;index" json:"startAt"`
	EndAt       time.Time `gorm:"column:end_at" json:"endAt"`

	TenantID *uint `gorm:"column:tenant_id;index" json:"tenantId,omitempty"`
}
