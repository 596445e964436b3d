package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

// Day-of-month thresholds for the automatic status sweep.
const (
	lateAfterDay    = 2
	overdueAfterDay = 8
)

// PaymentService records rent payments and runs the daily status sweep.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// NextPaymentStatus is the pure transition function behind the sweep.
// Tenants already Current or Partial are never touched. A payment inside
// the current month resets to Current; otherwise the day of month decides:
// day >= 8 is Overdue, day >= 2 is Late, earlier days leave the status as
// it was.
func NextPaymentStatus(current string, lastPayment *time.Time, now time.Time) string {
	if current == models.PaymentStatusCurrent || current == models.PaymentStatusPartial {
		return current
	}
	if lastPayment != nil &&
		lastPayment.Year() == now.Year() && lastPayment.Month() == now.Month() {
		return models.PaymentStatusCurrent
	}
	switch day := now.Day(); {
	case day >= overdueAfterDay:
		return models.PaymentStatusOverdue
	case day >= lateAfterDay:
		return models.PaymentStatusLate
	}
	return current
}

// SweepStatuses applies NextPaymentStatus to every active tenant and
// returns how many rows changed.
func (s *PaymentService) SweepStatuses(now time.Time) (int, error) {
	var tenants []models.Tenant
	if err := s.DB.Where("active = ?", true).Find(&tenants).Error; err != nil {
		return 0, fmt.Errorf("failed to load tenants: %w", err)
	}

	changed := 0
	for i := range tenants {
		t := &tenants[i]
		next := NextPaymentStatus(t.PaymentStatus, t.LastPaymentDate, now)
		if next == t.PaymentStatus {
			continue
		}
		if err := s.DB.Model(t).Update("payment_status", next).Error; err != nil {
			// One bad row must not stop the sweep.
			log.Printf("payment sweep: tenant %d update failed: %v", t.ID, err)
			continue
		}
		changed++
	}
	return changed, nil
}

// RecordPaymentInput is what the payment panel posts.
type RecordPaymentInput struct {
	RoomNumber string
	TenantName string
	Amount     float64
	Method     string
	Partial    bool
	PaidAt     time.Time // zero means now
}

// RecordPayment matches the tenant by (room, name), stamps the last payment
// date and status, and appends the income row with a generated reference
// and receipt string.
func (s *PaymentService) RecordPayment(in RecordPaymentInput) (models.BudgetEntry, error) {
	name := strings.TrimSpace(in.TenantName)
	roomNumber := strings.TrimSpace(in.RoomNumber)
	if name == "" || roomNumber == "" {
		return models.BudgetEntry{}, errors.New("payment_details_missing")
	}
	if in.Amount <= 0 {
		return models.BudgetEntry{}, errors.New("invalid_amount")
	}

	var tenant models.Tenant
	err := s.DB.
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Where("tenants.active = ? AND tenants.full_name = ? AND rooms.room_number = ?", true, name, roomNumber).
		Preload("Room").
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BudgetEntry{}, errors.New("tenant_not_found")
	}
	if err != nil {
		return models.BudgetEntry{}, fmt.Errorf("failed to find tenant: %w", err)
	}

	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	status := models.PaymentStatusCurrent
	if in.Partial {
		status = models.PaymentStatusPartial
	}

	ref, err := utils.GeneratePaymentReference(paidAt)
	if err != nil {
		return models.BudgetEntry{}, fmt.Errorf("failed to generate reference: %w", err)
	}
	tenantID := tenant.ID
	entry := models.BudgetEntry{
		EntryDate:     paidAt,
		Type:          models.BudgetTypeIncome,
		Description:   fmt.Sprintf("Rent payment - %s (Room %s)", tenant.FullName, roomNumber),
		Amount:        SignedAmount(models.BudgetTypeIncome, in.Amount),
		Category:      "Rent",
		PaymentMethod: in.Method,
		Reference:     ref,
		ReceiptRef:    utils.BuildReceiptRef(tenant.FirstName(), roomNumber, paidAt),
		TenantID:      &tenantID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"last_payment_date": paidAt,
			"payment_status":    status,
		}
		if err := tx.Model(&tenant).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.BudgetEntry{}, err
	}
	return entry, nil
}
