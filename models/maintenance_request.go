package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Maintenance request states and priorities.
const (
	MaintenanceStatusPending    = "Pending"
	MaintenanceStatusInProgress = "In Progress"
	MaintenanceStatusCompleted  = "Completed"
	MaintenanceStatusCancelled  = "Cancelled"
	MaintenanceStatusOnHold     = "On Hold"

	MaintenancePriorityLow       = "Low"
	MaintenancePriorityMedium    = "Medium"
	MaintenancePriorityHigh      = "High"
	MaintenancePriorityEmergency = "Emergency"
)

type MaintenanceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RequestCode string    `gorm:"column:request_code;uniqueIndex;size:64" json:"requestCode"`
	ReportedAt  time.Time `gorm:"column:reported_at" json:"reportedAt"`

	RoomArea    string `gorm:"column:room_area;size:100" json:"roomArea"`
	IssueType   string `gorm:"column:issue_type;size:100" json:"issueType"`
	Priority    string `gorm:"size:32;default:Medium;index" json:"priority"`
	Description string `gorm:"type:text" json:"description"`

	Reporter string `gorm:"size:255" json:"reporter"`
	Contact  string `gorm:"size:150" json:"contact"`
	Assignee string `gorm:"size:255" json:"assignee"`
	Status   string `gorm:"size:32;default:Pending;index" json:"status"`

	EstimatedCost float64 `gorm:"column:estimated_cost" json:"estimatedCost"`
	ActualCost    float64 `gorm:"column:actual_cost" json:"actualCost"`

	ScheduledDate *time.Time `gorm:"column:scheduled_date" json:"scheduledDate,omitempty"`
	CompletedDate *time.Time `gorm:"column:completed_date" json:"completedDate,omitempty"`

	// Parts holds a free-form JSON list of parts used, e.g. [{"name":"valve","qty":2}].
	Parts      datatypes.JSON `json:"parts,omitempty"`
	LaborHours float64        `gorm:"column:labor_hours" json:"laborHours"`
	Notes      string         `gorm:"type:text" json:"notes"`
}
