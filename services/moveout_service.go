package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

// MoveOutService completes move-out requests: the tenant row is deactivated
// and blanked rather than deleted, the room goes back to Vacant.
type MoveOutService struct {
	DB   *gorm.DB
	Subs *SubmissionService
}

func NewMoveOutService(db *gorm.DB, subs *SubmissionService) *MoveOutService {
	return &MoveOutService{DB: db, Subs: subs}
}

// MoveOutPayload is the shape the move-out form submits.
type MoveOutPayload struct {
	TenantName  string `json:"tenantName"`
	RoomNumber  string `json:"roomNumber"`
	MoveOutDate string `json:"moveOutDate"` // YYYY-MM-DD
	Reason      string `json:"reason"`
}

// Complete processes one move-out request. The tenant is matched by
// (name, room number) among active tenants. When returnDeposit is set and
// the tenant holds a security deposit, a deposit-return expense is appended
// to the budget.
func (s *MoveOutService) Complete(submissionID string, returnDeposit bool) error {
	sub, err := s.Subs.GetByUUID(submissionID)
	if err != nil {
		return err
	}
	if sub.Kind != models.SubmissionKindMoveOut {
		return errors.New("submission_wrong_kind")
	}
	if !sub.PendingReview() {
		return errors.New("submission_already_processed")
	}

	var payload MoveOutPayload
	if err := json.Unmarshal(sub.Payload, &payload); err != nil {
		return fmt.Errorf("failed to decode move-out payload: %w", err)
	}
	name := strings.TrimSpace(payload.TenantName)
	if name == "" {
		name = sub.SubmitterName
	}
	roomNumber := strings.TrimSpace(payload.RoomNumber)
	if name == "" || roomNumber == "" {
		return errors.New("moveout_details_missing")
	}

	var tenant models.Tenant
	err = s.DB.
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Where("tenants.active = ? AND tenants.full_name = ? AND rooms.room_number = ?", true, name, roomNumber).
		Preload("Room").
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("tenant_not_found")
	}
	if err != nil {
		return fmt.Errorf("failed to find tenant: %w", err)
	}

	moveOut := time.Now()
	if payload.MoveOutDate != "" {
		if d, pErr := time.Parse("2006-01-02", payload.MoveOutDate); pErr == nil {
			moveOut = d
		}
	}

	deposit := tenant.SecurityDeposit
	tenantID := tenant.ID

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// Blank tenant-specific state; the row survives for history.
		updates := map[string]interface{}{
			"active":            false,
			"actual_move_out":   moveOut,
			"payment_status":    "",
			"last_payment_date": nil,
			"negotiated_price":  nil,
		}
		if err := tx.Model(&tenant).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to deactivate tenant: %w", err)
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", tenant.RoomID).
			Update("status", models.RoomStatusVacant).Error; err != nil {
			return fmt.Errorf("failed to vacate room: %w", err)
		}

		if returnDeposit && deposit > 0 {
			ref, rErr := utils.GenerateBudgetReference(moveOut)
			if rErr != nil {
				return rErr
			}
			entry := models.BudgetEntry{
				EntryDate:     moveOut,
				Type:          models.BudgetTypeExpense,
				Description:   fmt.Sprintf("Security deposit return - %s (Room %s)", name, roomNumber),
				Amount:        SignedAmount(models.BudgetTypeExpense, deposit),
				Category:      "Security Deposit",
				PaymentMethod: "Transfer",
				Reference:     ref,
				TenantID:      &tenantID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to record deposit return: %w", err)
			}
		}

		stamp := fmt.Sprintf("Completed %s", moveOut.Format("2006-01-02"))
		return s.Subs.MarkProcessed(tx, &sub, stamp, time.Now())
	})
}
