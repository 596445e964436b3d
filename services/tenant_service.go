package services

import (
	"errors"
	"fmt"

	"property-backend/models"

	"gorm.io/gorm"
)

type TenantService struct {
	DB *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{DB: db}
}

// List returns tenants with their rooms; activeOnly hides moved-out rows.
func (s *TenantService) List(activeOnly bool) ([]models.Tenant, error) {
	q := s.DB.Preload("Room").Order("id ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var tenants []models.Tenant
	err := q.Find(&tenants).Error
	return tenants, err
}

func (s *TenantService) Get(id uint) (models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.Preload("Room").First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tenant, errors.New("tenant_not_found")
	}
	return tenant, err
}

// UpdatableTenantFields is the whitelist the edit panel may change.
type UpdatableTenantFields struct {
	Phone            *string  `json:"phone,omitempty"`
	Email            *string  `json:"email,omitempty"`
	NegotiatedPrice  *float64 `json:"negotiatedPrice,omitempty"`
	PlannedMoveOut   *string  `json:"plannedMoveOut,omitempty"` // YYYY-MM-DD
	LeaseEndDate     *string  `json:"leaseEndDate,omitempty"`   // YYYY-MM-DD
	EmergencyContact *string  `json:"emergencyContact,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

func (s *TenantService) Update(id uint, fields UpdatableTenantFields) (models.Tenant, error) {
	tenant, err := s.Get(id)
	if err != nil {
		return tenant, err
	}

	updates := map[string]interface{}{}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.Email != nil {
		updates["email"] = *fields.Email
	}
	if fields.NegotiatedPrice != nil {
		if *fields.NegotiatedPrice <= 0 {
			updates["negotiated_price"] = nil
		} else {
			updates["negotiated_price"] = *fields.NegotiatedPrice
		}
	}
	if fields.EmergencyContact != nil {
		updates["emergency_contact"] = *fields.EmergencyContact
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}
	if fields.PlannedMoveOut != nil {
		if d, pErr := parseDate(*fields.PlannedMoveOut); pErr == nil {
			updates["planned_move_out"] = d
		}
	}
	if fields.LeaseEndDate != nil {
		if d, pErr := parseDate(*fields.LeaseEndDate); pErr == nil {
			updates["lease_end_date"] = d
		}
	}
	if len(updates) == 0 {
		return tenant, nil
	}
	if err := s.DB.Model(&tenant).Updates(updates).Error; err != nil {
		return tenant, fmt.Errorf("failed to update tenant: %w", err)
	}
	return s.Get(id)
}
