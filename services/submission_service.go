package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"property-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionService owns the intake-form response table. Every submission
// gets a uuid at insert time; review flows address rows by that id.
type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// Submit appends one form response. Unknown kinds are rejected so rows can
// never land untyped.
func (s *SubmissionService) Submit(kind, name, email string, payload map[string]interface{}) (models.FormSubmission, error) {
	switch kind {
	case models.SubmissionKindApplication, models.SubmissionKindMoveOut, models.SubmissionKindGuestCheckin:
	default:
		return models.FormSubmission{}, errors.New("unknown_form_kind")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return models.FormSubmission{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	sub := models.FormSubmission{
		SubmissionID:   uuid.NewString(),
		Kind:           kind,
		SubmitterName:  strings.TrimSpace(name),
		SubmitterEmail: strings.TrimSpace(email),
		Payload:        datatypes.JSON(raw),
		Processed:      models.ProcessedPending,
	}
	if err := s.DB.Create(&sub).Error; err != nil {
		return models.FormSubmission{}, fmt.Errorf("failed to store submission: %w", err)
	}
	return sub, nil
}

// ListPending returns unprocessed rows of one kind, skipping rows without a
// submitter name (blank form responses).
func (s *SubmissionService) ListPending(kind string) ([]models.FormSubmission, error) {
	var subs []models.FormSubmission
	err := s.DB.
		Where("kind = ? AND (processed = ? OR processed = '')", kind, models.ProcessedPending).
		Where("submitter_name <> ''").
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (s *SubmissionService) GetByUUID(submissionID string) (models.FormSubmission, error) {
	var sub models.FormSubmission
	err := s.DB.Where("submission_id = ?", submissionID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sub, errors.New("submission_not_found")
	}
	return sub, err
}

// FindByIdentity matches a pending submission on (full name, lowercased
// email). Exactly one match is required: zero is submission_not_found, two
// or more is submission_ambiguous so similar rows are never mis-routed.
func (s *SubmissionService) FindByIdentity(kind, name, email string) (models.FormSubmission, error) {
	var subs []models.FormSubmission
	err := s.DB.
		Where("kind = ? AND (processed = ? OR processed = '')", kind, models.ProcessedPending).
		Where("submitter_name = ? AND LOWER(submitter_email) = ?",
			strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(email))).
		Find(&subs).Error
	if err != nil {
		return models.FormSubmission{}, err
	}
	switch len(subs) {
	case 0:
		return models.FormSubmission{}, errors.New("submission_not_found")
	case 1:
		return subs[0], nil
	default:
		return models.FormSubmission{}, errors.New("submission_ambiguous")
	}
}

// MarkProcessed stamps the row so it is never picked up again.
func (s *SubmissionService) MarkProcessed(tx *gorm.DB, sub *models.FormSubmission, marker string, at time.Time) error {
	if tx == nil {
		tx = s.DB
	}
	return tx.Model(sub).Updates(map[string]interface{}{
		"processed":    marker,
		"processed_at": at,
	}).Error
}
