package models

import "time"

// FormDefinition describes one of the three intake forms. Rows are created
// synchronously at seed time and their identifiers recorded in app_settings,
// so submissions always arrive pre-typed.
type FormDefinition struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FormID string `gorm:"column:form_id;uniqueIndex;size:36" json:"formId"`
	Kind   string `gorm:"uniqueIndex;size:32" json:"kind"`
	Title  string `gorm:"size:255" json:"title"`
}
