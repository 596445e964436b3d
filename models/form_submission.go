package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission kinds, one per intake form.
const (
	SubmissionKindApplication  = "tenant_application"
	SubmissionKindMoveOut      = "moveout_request"
	SubmissionKindGuestCheckin = "guest_checkin"
)

// Processed markers. Completed move-outs get a free-text stamp
// ("Completed 2024-08-17") instead of a fixed constant.
const (
	ProcessedPending  = "Pending Review"
	ProcessedApproved = "Approved"
	ProcessedRejected = "Rejected"
)

// FormSubmission is one intake-form response. Every row gets a server-side
// uuid so review actions never have to disambiguate duplicate name+email
// submissions by string matching.
type FormSubmission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SubmissionID string `gorm:"column:submission_id;uniqueIndex;size:36" json:"submissionId"`
	Kind         string `gorm:"size:32;index" json:"kind"`

	SubmitterName  string `gorm:"column:submitter_name;size:255" json:"submitterName"`
	SubmitterEmail string `gorm:"column:submitter_email;size:150" json:"submitterEmail"`

	Payload datatypes.JSON `json:"payload"`

	Processed   string     `gorm:"size:64;index" json:"processed"`
	ProcessedAt *time.Time `gorm:"column:processed_at" json:"processedAt,omitempty"`
}

// PendingReview reports whether the row still awaits a decision.
func (f *FormSubmission) PendingReview() bool {
	return f.Processed == "" || f.Processed == ProcessedPending
}
