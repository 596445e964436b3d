package services

import (
	"strings"
	"testing"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMaintenanceRequestDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)

	req := models.MaintenanceRequest{
		RoomArea:    "Room 101",
		IssueType:   "Plumbing",
		Description: "Leaking sink",
		Reporter:    "John Smith",
	}
	require.NoError(t, svc.Create(&req))

	assert.True(t, strings.HasPrefix(req.RequestCode, "MR-"), req.RequestCode)
	assert.Equal(t, models.MaintenanceStatusPending, req.Status)
	assert.Equal(t, models.MaintenancePriorityMedium, req.Priority)
	assert.False(t, req.ReportedAt.IsZero())

	err := svc.Create(&models.MaintenanceRequest{RoomArea: "Lobby"})
	assert.EqualError(t, err, "description_missing")
}

func TestMaintenanceListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)

	seed := []models.MaintenanceRequest{
		{Description: "A", Status: models.MaintenanceStatusPending, Priority: models.MaintenancePriorityHigh},
		{Description: "B", Status: models.MaintenanceStatusInProgress, Priority: models.MaintenancePriorityHigh},
		{Description: "C", Status: models.MaintenanceStatusPending, Priority: models.MaintenancePriorityLow},
	}
	for i := range seed {
		require.NoError(t, svc.Create(&seed[i]))
	}

	got, err := svc.List(models.MaintenanceStatusPending, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List("", models.MaintenancePriorityHigh)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(models.MaintenanceStatusPending, models.MaintenancePriorityHigh)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMaintenanceUpdateStampsCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)

	req := models.MaintenanceRequest{Description: "Broken light"}
	require.NoError(t, svc.Create(&req))

	status := models.MaintenanceStatusCompleted
	cost := 85.0
	updated, err := svc.Update(req.ID, MaintenanceUpdate{Status: &status, ActualCost: &cost})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusCompleted, updated.Status)
	assert.Equal(t, 85.0, updated.ActualCost)
	assert.NotNil(t, updated.CompletedDate)

	bad := "Vanished"
	_, err = svc.Update(req.ID, MaintenanceUpdate{Status: &bad})
	assert.EqualError(t, err, "invalid_status")

	_, err = svc.Update(9999, MaintenanceUpdate{})
	assert.EqualError(t, err, "request_not_found")
}
