package services

import (
	"fmt"
	"log"
	"strings"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

// NotifyService renders and sends the rent emails. Send is swappable so
// tests never touch SMTP.
type NotifyService struct {
	DB   *gorm.DB
	Send func(recipient, subject, body string) error
}

func NewNotifyService(db *gorm.DB) *NotifyService {
	return &NotifyService{DB: db, Send: utils.SendMail}
}

// ShouldSendLateAlert decides who gets a late alert: Late, Overdue and
// Partial tenants.
func ShouldSendLateAlert(paymentStatus string) bool {
	switch paymentStatus {
	case models.PaymentStatusLate, models.PaymentStatusOverdue, models.PaymentStatusPartial:
		return true
	}
	return false
}

func (s *NotifyService) propertyName() string {
	var setting models.PropertySetting
	if err := s.DB.First(&setting).Error; err != nil || setting.Name == "" {
		return "Property Management"
	}
	return setting.Name
}

func (s *NotifyService) activeTenantsWithEmail() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := s.DB.Where("active = ? AND email <> ''", true).Preload("Room").Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	return tenants, nil
}

// sendAll delivers one rendered email per tenant; a failed recipient is
// logged and the loop continues.
func (s *NotifyService) sendAll(tenants []models.Tenant, render func(t models.Tenant) utils.RentEmail) int {
	sent := 0
	for _, t := range tenants {
		msg := render(t)
		if err := s.Send(t.Email, msg.Subject, msg.Body); err != nil {
			log.Printf("email to %s failed: %v", t.Email, err)
			continue
		}
		sent++
	}
	return sent
}

// SendReminders mails every active tenant ahead of the due date.
func (s *NotifyService) SendReminders() (int, error) {
	tenants, err := s.activeTenantsWithEmail()
	if err != nil {
		return 0, err
	}
	property := s.propertyName()
	return s.sendAll(tenants, func(t models.Tenant) utils.RentEmail {
		return utils.RentReminderEmail(t.FullName, t.Room.RoomNumber, t.EffectiveRent(), property)
	}), nil
}

// SendInvoices mails every active tenant on the 1st.
func (s *NotifyService) SendInvoices() (int, error) {
	tenants, err := s.activeTenantsWithEmail()
	if err != nil {
		return 0, err
	}
	property := s.propertyName()
	return s.sendAll(tenants, func(t models.Tenant) utils.RentEmail {
		return utils.RentInvoiceEmail(t.FullName, t.Room.RoomNumber, t.EffectiveRent(), property)
	}), nil
}

// SendLateAlerts mails tenants whose status calls for an alert; Partial
// gets the outstanding-balance template, Late/Overdue the late one.
func (s *NotifyService) SendLateAlerts() (int, error) {
	tenants, err := s.activeTenantsWithEmail()
	if err != nil {
		return 0, err
	}
	property := s.propertyName()

	alertable := tenants[:0]
	for _, t := range tenants {
		if ShouldSendLateAlert(t.PaymentStatus) {
			alertable = append(alertable, t)
		}
	}
	return s.sendAll(alertable, func(t models.Tenant) utils.RentEmail {
		if strings.EqualFold(t.PaymentStatus, models.PaymentStatusPartial) {
			return utils.PartialBalanceEmail(t.FullName, t.Room.RoomNumber, t.EffectiveRent(), property)
		}
		return utils.LateAlertEmail(t.FullName, t.Room.RoomNumber, t.EffectiveRent(), t.PaymentStatus, property)
	}), nil
}
