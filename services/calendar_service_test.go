package services

import (
	"testing"
	"time"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerateRentDue(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalendarService(db)

	roomA := createTestRoom(t, db, "101", 3500, 120)
	roomB := createTestRoom(t, db, "102", 3000, 100)
	roomC := createTestRoom(t, db, "103", 2800, 100)

	createTestTenant(t, db, roomA, "John Smith", "john@example.com")
	negotiated := createTestTenant(t, db, roomB, "Mia Wong", "mia@example.com")
	require.NoError(t, db.Model(&negotiated).Update("negotiated_price", 2700.0).Error)
	former := createTestTenant(t, db, roomC, "Gone Away", "gone@example.com")
	require.NoError(t, db.Model(&former).Update("active", false).Error)

	now := time.Date(2024, time.August, 1, 6, 0, 0, 0, time.UTC)
	created, err := svc.RegenerateRentDue(now)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	var events []models.CalendarEvent
	require.NoError(t, db.Order("id ASC").Find(&events).Error)
	require.Len(t, events, 2)

	assert.Contains(t, events[0].Title, models.RentDueTitlePrefix)
	assert.Contains(t, events[0].Title, "John Smith")
	assert.Contains(t, events[0].Description, "3500.00")
	assert.Equal(t, time.September, events[0].StartAt.Month())
	assert.Equal(t, 1, events[0].StartAt.Day())

	// Negotiated price wins over the room's standard rent.
	assert.Contains(t, events[1].Description, "2700.00")

	// Rerunning replaces rather than duplicates.
	created, err = svc.RegenerateRentDue(now)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	var count int64
	require.NoError(t, db.Model(&models.CalendarEvent{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRegenerateLeavesOtherEventsAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalendarService(db)

	manual := models.CalendarEvent{
		Title:   "Fire inspection",
		StartAt: time.Date(2024, time.September, 3, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, time.September, 3, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&manual).Error)

	_, err := svc.RegenerateRentDue(time.Date(2024, time.August, 1, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var got models.CalendarEvent
	assert.NoError(t, db.First(&got, manual.ID).Error)
}

func TestUpcoming(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalendarService(db)

	now := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		{Title: "Past", StartAt: now.AddDate(0, 0, -5)},
		{Title: "Soon", StartAt: now.AddDate(0, 0, 2)},
		{Title: "Later", StartAt: now.AddDate(0, 0, 10)},
	}
	for i := range events {
		require.NoError(t, db.Create(&events[i]).Error)
	}

	got, err := svc.Upcoming(now, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Soon", got[0].Title)
	assert.Equal(t, "Later", got[1].Title)

	got, err = svc.Upcoming(now, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Soon", got[0].Title)
}
