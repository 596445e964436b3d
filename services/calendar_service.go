package services

import (
	"fmt"
	"time"

	"property-backend/models"

	"gorm.io/gorm"
)

// CalendarService maintains the DB-backed rent-due calendar. Regeneration is
// idempotent: everything under the fixed title prefix is cleared first, then
// rebuilt from the current tenant list.
type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// RegenerateRentDue clears all rent-due events and creates one per active
// tenant on the first of the month following now, carrying the effective
// rent in the description.
func (s *CalendarService) RegenerateRentDue(now time.Time) (int, error) {
	var tenants []models.Tenant
	if err := s.DB.Where("active = ?", true).Preload("Room").Find(&tenants).Error; err != nil {
		return 0, fmt.Errorf("failed to load tenants: %w", err)
	}

	firstOfNext := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location()).AddDate(0, 1, 0)

	created := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title LIKE ?", models.RentDueTitlePrefix+"%").
			Delete(&models.CalendarEvent{}).Error; err != nil {
			return fmt.Errorf("failed to clear rent-due events: %w", err)
		}
		for i := range tenants {
			t := tenants[i]
			tenantID := t.ID
			event := models.CalendarEvent{
				Title:       fmt.Sprintf("%s %s (Room %s)", models.RentDueTitlePrefix, t.FullName, t.Room.RoomNumber),
				Description: fmt.Sprintf("Rent due: %.2f", t.EffectiveRent()),
				StartAt:     firstOfNext,
				EndAt:       firstOfNext.Add(time.Hour),
				TenantID:    &tenantID,
			}
			if err := tx.Create(&event).Error; err != nil {
				return fmt.Errorf("failed to create event for tenant %d: %w", t.ID, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Upcoming lists events from now onward, soonest first.
func (s *CalendarService) Upcoming(now time.Time, limit int) ([]models.CalendarEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []models.CalendarEvent
	err := s.DB.Where("start_at >= ?", now).Order("start_at ASC").Limit(limit).Find(&events).Error
	return events, err
}
