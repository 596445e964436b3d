package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BudgetTypeIncome  = "Income"
	BudgetTypeExpense = "Expense"
)

// BudgetEntry stores Income positive and Expense negative regardless of the
// sign the caller supplied.
type BudgetEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EntryDate   time.Time `gorm:"column:entry_date;index" json:"entryDate"`
	Type        string    `gorm:"size:16;index" json:"type"`
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `gorm:"size:64;index" json:"category"`

	PaymentMethod string `gorm:"column:payment_method;size:64" json:"paymentMethod"`
	Reference     string `gorm:"size:64;index" json:"reference"`
	ReceiptRef    string `gorm:"column:receipt_ref;size:64" json:"receiptRef"`

	TenantID  *uint `gorm:"column:tenant_id;index" json:"tenantId,omitempty"`
	BookingID *uint `gorm:"column:booking_id;index" json:"bookingId,omitempty"`
}
