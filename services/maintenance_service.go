package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db}
}

// parseDate accepts the YYYY-MM-DD strings the panels post.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// Create fills the request code, report time and defaults.
func (s *MaintenanceService) Create(req *models.MaintenanceRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return errors.New("description_missing")
	}
	if req.ReportedAt.IsZero() {
		req.ReportedAt = time.Now()
	}
	if strings.TrimSpace(req.RequestCode) == "" {
		code, err := utils.GenerateMaintenanceCode(req.ReportedAt)
		if err != nil {
			return err
		}
		req.RequestCode = code
	}
	if req.Status == "" {
		req.Status = models.MaintenanceStatusPending
	}
	if req.Priority == "" {
		req.Priority = models.MaintenancePriorityMedium
	}
	if err := s.DB.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return nil
}

func (s *MaintenanceService) List(status, priority string) ([]models.MaintenanceRequest, error) {
	q := s.DB.Order("reported_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	var reqs []models.MaintenanceRequest
	err := q.Find(&reqs).Error
	return reqs, err
}

func (s *MaintenanceService) Get(id uint) (models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	err := s.DB.First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, errors.New("request_not_found")
	}
	return req, err
}

func validMaintenanceStatus(status string) bool {
	switch status {
	case models.MaintenanceStatusPending, models.MaintenanceStatusInProgress,
		models.MaintenanceStatusCompleted, models.MaintenanceStatusCancelled,
		models.MaintenanceStatusOnHold:
		return true
	}
	return false
}

// MaintenanceUpdate is the whitelist the edit panel may change.
type MaintenanceUpdate struct {
	Status        *string  `json:"status,omitempty"`
	Assignee      *string  `json:"assignee,omitempty"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	ActualCost    *float64 `json:"actualCost,omitempty"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"` // YYYY-MM-DD
	LaborHours    *float64 `json:"laborHours,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// Update applies the whitelisted fields; moving to Completed stamps the
// completion date.
func (s *MaintenanceService) Update(id uint, upd MaintenanceUpdate) (models.MaintenanceRequest, error) {
	req, err := s.Get(id)
	if err != nil {
		return req, err
	}

	updates := map[string]interface{}{}
	if upd.Status != nil {
		if !validMaintenanceStatus(*upd.Status) {
			return req, errors.New("invalid_status")
		}
		updates["status"] = *upd.Status
		if *upd.Status == models.MaintenanceStatusCompleted && req.CompletedDate == nil {
			updates["completed_date"] = time.Now()
		}
	}
	if upd.Assignee != nil {
		updates["assignee"] = *upd.Assignee
	}
	if upd.EstimatedCost != nil {
		updates["estimated_cost"] = *upd.EstimatedCost
	}
	if upd.ActualCost != nil {
		updates["actual_cost"] = *upd.ActualCost
	}
	if upd.ScheduledDate != nil {
		if d, pErr := parseDate(*upd.ScheduledDate); pErr == nil {
			updates["scheduled_date"] = d
		}
	}
	if upd.LaborHours != nil {
		updates["labor_hours"] = *upd.LaborHours
	}
	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}
	if len(updates) == 0 {
		return req, nil
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return req, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	return s.Get(id)
}
