package services

import (
	"errors"
	"testing"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestShouldSendLateAlert(t *testing.T) {
	assert.True(t, ShouldSendLateAlert(models.PaymentStatusLate))
	assert.True(t, ShouldSendLateAlert(models.PaymentStatusOverdue))
	assert.True(t, ShouldSendLateAlert(models.PaymentStatusPartial))
	assert.False(t, ShouldSendLateAlert(models.PaymentStatusCurrent))
	assert.False(t, ShouldSendLateAlert(""))
}

type sentMail struct {
	recipient string
	subject   string
	body      string
}

func captureNotify(db *gorm.DB) (*NotifyService, *[]sentMail) {
	svc := NewNotifyService(db)
	var sent []sentMail
	svc.Send = func(recipient, subject, body string) error {
		sent = append(sent, sentMail{recipient, subject, body})
		return nil
	}
	return svc, &sent
}

func seedNotifyTenants(t *testing.T, db *gorm.DB) {
	t.Helper()
	roomA := createTestRoom(t, db, "101", 3500, 120)
	roomB := createTestRoom(t, db, "102", 3000, 100)
	roomC := createTestRoom(t, db, "103", 2800, 100)
	roomD := createTestRoom(t, db, "104", 2600, 100)

	late := createTestTenant(t, db, roomA, "Late Tenant", "late@example.com")
	require.NoError(t, db.Model(&late).Update("payment_status", models.PaymentStatusLate).Error)

	partial := createTestTenant(t, db, roomB, "Partial Tenant", "partial@example.com")
	require.NoError(t, db.Model(&partial).Update("payment_status", models.PaymentStatusPartial).Error)

	current := createTestTenant(t, db, roomC, "Current Tenant", "current@example.com")
	require.NoError(t, db.Model(&current).Update("payment_status", models.PaymentStatusCurrent).Error)

	// No email address, never mailed.
	noEmail := createTestTenant(t, db, roomD, "Quiet Tenant", "")
	require.NoError(t, db.Model(&noEmail).Update("payment_status", models.PaymentStatusOverdue).Error)
}

func TestSendInvoicesAndReminders(t *testing.T) {
	db := newTestDB(t)
	seedNotifyTenants(t, db)
	require.NoError(t, db.Create(&models.PropertySetting{Name: "Riverside House"}).Error)

	svc, sent := captureNotify(db)

	n, err := svc.SendInvoices()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, *sent, 3)
	assert.Contains(t, (*sent)[0].subject, "Rent invoice")
	assert.Contains(t, (*sent)[0].body, "Riverside House")

	*sent = nil
	n, err = svc.SendReminders()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, (*sent)[0].subject, "Rent reminder")
}

func TestSendLateAlertsPicksTemplates(t *testing.T) {
	db := newTestDB(t)
	seedNotifyTenants(t, db)
	svc, sent := captureNotify(db)

	n, err := svc.SendLateAlerts()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	bySubject := map[string]sentMail{}
	for _, m := range *sent {
		bySubject[m.recipient] = m
	}
	assert.Contains(t, bySubject["late@example.com"].subject, "Rent is late")
	assert.Contains(t, bySubject["partial@example.com"].subject, "Outstanding balance")
}

func TestSendAllContinuesAfterFailure(t *testing.T) {
	db := newTestDB(t)
	seedNotifyTenants(t, db)
	svc := NewNotifyService(db)

	calls := 0
	svc.Send = func(recipient, subject, body string) error {
		calls++
		if recipient == "late@example.com" {
			return errors.New("smtp down")
		}
		return nil
	}

	n, err := svc.SendInvoices()
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, n)
}
