package models

import "time"

// JobRun gives scheduled jobs idempotency: one row per job type per period.
// A duplicate (job_type, period_key) insert fails the unique index, which a
// second overlapping run treats as "already handled".
type JobRun struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	JobType   string `gorm:"column:job_type;size:64;uniqueIndex:idx_job_period" json:"jobType"`
	PeriodKey string `gorm:"column:period_key;size:32;uniqueIndex:idx_job_period" json:"periodKey"`

	RanAt time.Time `gorm:"column:ran_at" json:"ranAt"`
	Note  string    `gorm:"size:255" json:"note"`
}

// Scheduled job types.
const (
	JobTypeRentReminders = "rent_reminders"
	JobTypeRentInvoices  = "rent_invoices"
	JobTypeLateAlerts    = "late_alerts"
	JobTypePaymentSweep  = "payment_status_sweep"
	JobTypeCalendarRegen = "calendar_regen"
)
