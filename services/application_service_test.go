package services

import (
	"testing"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitApplication(t *testing.T, subs *SubmissionService, payload map[string]interface{}) models.FormSubmission {
	t.Helper()
	name, _ := payload["fullName"].(string)
	email, _ := payload["email"].(string)
	sub, err := subs.Submit(models.SubmissionKindApplication, name, email, payload)
	require.NoError(t, err)
	return sub
}

func TestApproveApplication(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	svc := NewApplicationService(db, subs)

	room := createTestRoom(t, db, "101", 3500, 120)
	sub := submitApplication(t, subs, map[string]interface{}{
		"fullName":        "John Smith",
		"email":           "john@example.com",
		"phone":           "555-0101",
		"roomNumber":      "101",
		"moveInDate":      "2024-09-01",
		"securityDeposit": 3500.0,
		"negotiatedPrice": 3200.0,
	})

	tenant, err := svc.Approve(sub.SubmissionID, "")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", tenant.FullName)
	assert.Equal(t, room.ID, tenant.RoomID)
	assert.True(t, tenant.Active)
	require.NotNil(t, tenant.NegotiatedPrice)
	assert.Equal(t, 3200.0, *tenant.NegotiatedPrice)
	require.NotNil(t, tenant.MoveInDate)
	assert.Equal(t, "2024-09-01", tenant.MoveInDate.Format("2006-01-02"))

	var gotRoom models.Room
	require.NoError(t, db.First(&gotRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, gotRoom.Status)

	gotSub, err := subs.GetByUUID(sub.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, models.ProcessedApproved, gotSub.Processed)
	assert.NotNil(t, gotSub.ProcessedAt)

	// A processed submission cannot be approved twice.
	_, err = svc.Approve(sub.SubmissionID, "")
	assert.EqualError(t, err, "submission_already_processed")
}

func TestApproveRoomOverride(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	svc := NewApplicationService(db, subs)

	createTestRoom(t, db, "101", 3500, 120)
	other := createTestRoom(t, db, "105", 3800, 130)

	sub := submitApplication(t, subs, map[string]interface{}{
		"fullName":   "Ana Cruz",
		"email":      "ana@example.com",
		"roomNumber": "101",
	})

	tenant, err := svc.Approve(sub.SubmissionID, "105")
	require.NoError(t, err)
	assert.Equal(t, other.ID, tenant.RoomID)
}

func TestApproveRejectsOccupiedRoom(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	svc := NewApplicationService(db, subs)

	room := createTestRoom(t, db, "101", 3500, 120)
	createTestTenant(t, db, room, "Sitting Tenant", "sit@example.com")

	sub := submitApplication(t, subs, map[string]interface{}{
		"fullName":   "New Applicant",
		"email":      "new@example.com",
		"roomNumber": "101",
	})
	_, err := svc.Approve(sub.SubmissionID, "")
	assert.EqualError(t, err, "room_occupied")

	sub2 := submitApplication(t, subs, map[string]interface{}{
		"fullName":   "Lost Applicant",
		"email":      "lost@example.com",
		"roomNumber": "999",
	})
	_, err = svc.Approve(sub2.SubmissionID, "")
	assert.EqualError(t, err, "room_not_found")
}

func TestRejectApplication(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	svc := NewApplicationService(db, subs)

	sub := submitApplication(t, subs, map[string]interface{}{
		"fullName": "Rejected One",
		"email":    "rej@example.com",
	})
	require.NoError(t, svc.Reject(sub.SubmissionID))

	got, err := subs.GetByUUID(sub.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, models.ProcessedRejected, got.Processed)

	// No tenant was created.
	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&count).Error)
	assert.Zero(t, count)
}
