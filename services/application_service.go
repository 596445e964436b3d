package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"property-backend/models"

	"gorm.io/gorm"
)

// ApplicationService reviews tenant applications: approving one turns the
// submission into an active tenant on an open room.
type ApplicationService struct {
	DB   *gorm.DB
	Subs *SubmissionService
}

func NewApplicationService(db *gorm.DB, subs *SubmissionService) *ApplicationService {
	return &ApplicationService{DB: db, Subs: subs}
}

// ApplicationPayload is the shape the intake form submits.
type ApplicationPayload struct {
	FullName         string   `json:"fullName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	RoomNumber       string   `json:"roomNumber"`
	MoveInDate       string   `json:"moveInDate"` // YYYY-MM-DD
	SecurityDeposit  float64  `json:"securityDeposit"`
	NegotiatedPrice  *float64 `json:"negotiatedPrice,omitempty"`
	EmergencyContact string   `json:"emergencyContact"`
	Notes            string   `json:"notes"`
}

// Approve creates the tenant from the submission payload, flips the room to
// Occupied and stamps the row Approved, all in one transaction.
// roomNumber, when non-empty, overrides the room the applicant asked for.
func (s *ApplicationService) Approve(submissionID, roomNumber string) (models.Tenant, error) {
	sub, err := s.Subs.GetByUUID(submissionID)
	if err != nil {
		return models.Tenant{}, err
	}
	if sub.Kind != models.SubmissionKindApplication {
		return models.Tenant{}, errors.New("submission_wrong_kind")
	}
	if !sub.PendingReview() {
		return models.Tenant{}, errors.New("submission_already_processed")
	}

	var payload ApplicationPayload
	if err := json.Unmarshal(sub.Payload, &payload); err != nil {
		return models.Tenant{}, fmt.Errorf("failed to decode application payload: %w", err)
	}
	if strings.TrimSpace(payload.FullName) == "" {
		payload.FullName = sub.SubmitterName
	}
	if strings.TrimSpace(payload.Email) == "" {
		payload.Email = sub.SubmitterEmail
	}
	if strings.TrimSpace(payload.FullName) == "" {
		return models.Tenant{}, errors.New("applicant_name_missing")
	}

	target := strings.TrimSpace(roomNumber)
	if target == "" {
		target = strings.TrimSpace(payload.RoomNumber)
	}
	if target == "" {
		return models.Tenant{}, errors.New("room_number_missing")
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", target).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tenant{}, errors.New("room_not_found")
		}
		return models.Tenant{}, fmt.Errorf("failed to find room: %w", err)
	}
	if strings.EqualFold(room.Status, models.RoomStatusOccupied) {
		return models.Tenant{}, errors.New("room_occupied")
	}

	now := time.Now()
	tenant := models.Tenant{
		RoomID:           room.ID,
		FullName:         strings.TrimSpace(payload.FullName),
		Email:            strings.TrimSpace(payload.Email),
		Phone:            strings.TrimSpace(payload.Phone),
		SecurityDeposit:  payload.SecurityDeposit,
		NegotiatedPrice:  payload.NegotiatedPrice,
		EmergencyContact: payload.EmergencyContact,
		Notes:            payload.Notes,
		Active:           true,
	}
	if payload.MoveInDate != "" {
		if d, pErr := time.Parse("2006-01-02", payload.MoveInDate); pErr == nil {
			tenant.MoveInDate = &d
		}
	}
	if tenant.MoveInDate == nil {
		tenant.MoveInDate = &now
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}
		if err := tx.Model(&room).Update("status", models.RoomStatusOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}
		return s.Subs.MarkProcessed(tx, &sub, models.ProcessedApproved, now)
	})
	if err != nil {
		return models.Tenant{}, err
	}

	tenant.Room = room
	return tenant, nil
}

// Reject stamps the submission Rejected and touches nothing else.
func (s *ApplicationService) Reject(submissionID string) error {
	sub, err := s.Subs.GetByUUID(submissionID)
	if err != nil {
		return err
	}
	if sub.Kind != models.SubmissionKindApplication {
		return errors.New("submission_wrong_kind")
	}
	if !sub.PendingReview() {
		return errors.New("submission_already_processed")
	}
	return s.Subs.MarkProcessed(nil, &sub, models.ProcessedRejected, time.Now())
}
