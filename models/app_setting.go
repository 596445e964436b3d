package models

import "time"

// AppSetting is a small key/value config-state table (form identifiers,
// sync bookkeeping). Replaces ad-hoc property bags.
type AppSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Key   string `gorm:"uniqueIndex;size:100" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

// Well-known setting keys.
const (
	SettingApplicationFormID  = "form.tenant_application.id"
	SettingMoveOutFormID      = "form.moveout_request.id"
	SettingGuestCheckinFormID = "form.guest_checkin.id"
)
