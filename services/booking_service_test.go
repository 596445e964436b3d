package services

import (
	"testing"
	"time"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 7, NightsBetween(date(2024, time.August, 10), date(2024, time.August, 17)))
	assert.Equal(t, 1, NightsBetween(date(2024, time.August, 10), date(2024, time.August, 11)))
	assert.Equal(t, 0, NightsBetween(date(2024, time.August, 10), date(2024, time.August, 10)))
	assert.Equal(t, 0, NightsBetween(date(2024, time.August, 17), date(2024, time.August, 10)))

	// A partial day rounds up to a full night.
	late := time.Date(2024, time.August, 11, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, NightsBetween(date(2024, time.August, 10), late))
}

func TestCreateBookingDerivesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "301", 3500, 120)

	booking, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 10),
		CheckOut:  date(2024, time.August, 17),
		GuestName: "Dana Park",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, booking.Nights)
	assert.Equal(t, 840.0, booking.TotalAmount)
	assert.Equal(t, 120.0, booking.DailyRate)
	assert.Equal(t, models.BookingStatusReserved, booking.Status)
	assert.Equal(t, 1, booking.GuestCount)
	assert.NotEmpty(t, booking.ReferenceCode)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "301", 3500, 120)

	_, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 10),
		CheckOut:  date(2024, time.August, 17),
		GuestName: "First Guest",
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 15),
		CheckOut:  date(2024, time.August, 20),
		GuestName: "Second Guest",
	})
	assert.EqualError(t, err, "room_unavailable")

	// Back-to-back on the turnover day is allowed.
	_, err = svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 17),
		CheckOut:  date(2024, time.August, 20),
		GuestName: "Second Guest",
	})
	assert.NoError(t, err)
}

func TestCancelledBookingDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "301", 3500, 120)

	first, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 10),
		CheckOut:  date(2024, time.August, 17),
		GuestName: "First Guest",
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(first.ID, models.BookingStatusCancelled)
	require.NoError(t, err)

	avail, err := svc.CheckAvailability(room.ID, date(2024, time.August, 12), date(2024, time.August, 14))
	require.NoError(t, err)
	assert.False(t, avail.Occupied)
}

func TestCheckAvailabilitySurfacesNextBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "302", 3500, 100)

	_, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.September, 5),
		CheckOut:  date(2024, time.September, 8),
		GuestName: "Later Guest",
	})
	require.NoError(t, err)

	avail, err := svc.CheckAvailability(room.ID, date(2024, time.August, 20), date(2024, time.August, 22))
	require.NoError(t, err)
	assert.False(t, avail.Occupied)
	require.NotNil(t, avail.NextBooking)
	assert.Equal(t, date(2024, time.September, 5).Day(), avail.NextBooking.CheckIn.Day())
}

func TestCheckInCheckOutFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "303", 3500, 150)

	booking, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 10),
		CheckOut:  date(2024, time.August, 12),
		GuestName: "Eli Stone",
	})
	require.NoError(t, err)

	// Checkout before checkin is refused.
	_, err = svc.CheckOut(booking.ID)
	assert.EqualError(t, err, "booking_not_checked_in")

	checkedIn, err := svc.CheckIn(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedIn, checkedIn.Status)
	assert.NotNil(t, checkedIn.CheckedInAt)

	_, err = svc.CheckIn(booking.ID)
	assert.EqualError(t, err, "already_checked_in")

	checkedOut, err := svc.CheckOut(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, checkedOut.Status)
	assert.NotNil(t, checkedOut.CheckedOutAt)

	// Checkout writes the stay into the budget as guest income.
	var entry models.BudgetEntry
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&entry).Error)
	assert.Equal(t, models.BudgetTypeIncome, entry.Type)
	assert.Equal(t, 300.0, entry.Amount)
	assert.Equal(t, "Guest Room", entry.Category)
}

func TestSetStatusRejectsGuardedTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "304", 3500, 100)

	booking, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		CheckIn:   date(2024, time.August, 10),
		CheckOut:  date(2024, time.August, 12),
		GuestName: "Fay Ng",
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(booking.ID, models.BookingStatusCheckedIn)
	assert.EqualError(t, err, "invalid_booking_status")

	updated, err := svc.SetStatus(booking.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
}

func TestStatusBoard(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	roomA := createTestRoom(t, db, "401", 3500, 100)
	createTestRoom(t, db, "402", 3500, 100)

	today := time.Now()
	_, err := svc.Create(CreateBookingInput{
		RoomID:    roomA.ID,
		CheckIn:   today.AddDate(0, 0, -1),
		CheckOut:  today.AddDate(0, 0, 2),
		GuestName: "Gus Ward",
	})
	require.NoError(t, err)

	board, err := svc.StatusBoard(today)
	require.NoError(t, err)
	require.Len(t, board, 2)

	assert.Equal(t, "401", board[0].Room.RoomNumber)
	assert.True(t, board[0].Occupied)
	require.NotNil(t, board[0].Current)
	assert.Equal(t, "Gus Ward", board[0].Current.GuestName)

	assert.Equal(t, "402", board[1].Room.RoomNumber)
	assert.False(t, board[1].Occupied)
}
