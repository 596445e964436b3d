package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

// BookingService owns guest bookings and room availability.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// NightsBetween implements nights = ceil((checkOut - checkIn) / 1 day).
func NightsBetween(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// overlaps treats intervals as [checkIn, checkOut): back-to-back bookings
// sharing a turnover day do not conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CreateBookingInput is what the booking panel posts.
type CreateBookingInput struct {
	RoomID        uint
	CheckIn       time.Time
	CheckOut      time.Time
	DailyRate     float64 // 0 means "use the room's daily rate"
	GuestCount    int
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	Purpose       string
	PaymentStatus string
	Status        string
	Source        string
	Notes         string
}

// Create derives nights and total server-side and rejects date ranges that
// overlap a blocking booking for the same room.
func (s *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	if strings.TrimSpace(in.GuestName) == "" {
		return models.Booking{}, errors.New("guest_name_missing")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return models.Booking{}, errors.New("invalid_date_range")
	}

	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, errors.New("room_not_found")
		}
		return models.Booking{}, fmt.Errorf("failed to find room: %w", err)
	}

	avail, err := s.CheckAvailability(room.ID, in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}
	if avail.Occupied {
		return models.Booking{}, errors.New("room_unavailable")
	}

	rate := in.DailyRate
	if rate == 0 {
		rate = room.DailyRate
	}
	nights := NightsBetween(in.CheckIn, in.CheckOut)

	ref, err := utils.GenerateBookingReference(time.Now())
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to generate reference: %w", err)
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.BookingStatusReserved
	}
	guests := in.GuestCount
	if guests <= 0 {
		guests = 1
	}

	booking := models.Booking{
		ReferenceCode: ref,
		RoomID:        room.ID,
		DailyRate:     rate,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Nights:        nights,
		TotalAmount:   rate * float64(nights),
		GuestCount:    guests,
		GuestName:     strings.TrimSpace(in.GuestName),
		GuestEmail:    strings.TrimSpace(in.GuestEmail),
		GuestPhone:    strings.TrimSpace(in.GuestPhone),
		Purpose:       in.Purpose,
		PaymentStatus: in.PaymentStatus,
		Status:        status,
		Source:        in.Source,
		Notes:         in.Notes,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.Room = room
	return booking, nil
}

// Availability is the answer to "is this room free for that range".
type Availability struct {
	RoomID      uint            `json:"roomId"`
	Occupied    bool            `json:"occupied"`
	Conflict    *models.Booking `json:"conflict,omitempty"`
	NextBooking *models.Booking `json:"nextBooking,omitempty"`
}

// CheckAvailability scans the room's bookings linearly and takes the first
// date-overlapping blocking match. When free, the nearest upcoming booking
// is surfaced.
func (s *BookingService) CheckAvailability(roomID uint, from, to time.Time) (Availability, error) {
	var bookings []models.Booking
	if err := s.DB.Where("room_id = ?", roomID).Find(&bookings).Error; err != nil {
		return Availability{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	result := Availability{RoomID: roomID}
	for i := range bookings {
		b := bookings[i]
		if !b.Blocking() {
			continue
		}
		if overlaps(from, to, b.CheckIn, b.CheckOut) {
			result.Occupied = true
			result.Conflict = &bookings[i]
			return result, nil
		}
		if !b.CheckIn.Before(to) {
			if result.NextBooking == nil || b.CheckIn.Before(result.NextBooking.CheckIn) {
				result.NextBooking = &bookings[i]
			}
		}
	}
	return result, nil
}

// RoomBoardEntry is one row of the occupancy board.
type RoomBoardEntry struct {
	Room        models.Room     `json:"room"`
	Occupied    bool            `json:"occupied"`
	Current     *models.Booking `json:"current,omitempty"`
	NextBooking *models.Booking `json:"nextBooking,omitempty"`
}

// StatusBoard reports, per room, whether today falls inside an active
// booking, otherwise the nearest upcoming arrival.
func (s *BookingService) StatusBoard(today time.Time) ([]RoomBoardEntry, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	board := make([]RoomBoardEntry, 0, len(rooms))
	for _, room := range rooms {
		avail, err := s.CheckAvailability(room.ID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		entry := RoomBoardEntry{Room: room, Occupied: avail.Occupied, NextBooking: avail.NextBooking}
		if avail.Occupied {
			entry.Current = avail.Conflict
		}
		board = append(board, entry)
	}
	return board, nil
}

func (s *BookingService) Get(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, errors.New("booking_not_found")
	}
	return booking, err
}

func (s *BookingService) List(status string) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("check_in DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

// CheckIn moves a booking to Checked-In and stamps the time.
func (s *BookingService) CheckIn(id uint) (models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return booking, err
	}
	if strings.EqualFold(booking.Status, models.BookingStatusCheckedIn) {
		return booking, errors.New("already_checked_in")
	}
	if !booking.Blocking() {
		return booking, errors.New("booking_not_active")
	}
	now := time.Now()
	updates := map[string]interface{}{
		"status":        models.BookingStatusCheckedIn,
		"checked_in_at": now,
	}
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return booking, fmt.Errorf("failed to check in: %w", err)
	}
	booking.Status = models.BookingStatusCheckedIn
	booking.CheckedInAt = &now
	return booking, nil
}

// CheckOut moves a Checked-In booking to Checked-Out and records the
// booking total as guest income in the budget.
func (s *BookingService) CheckOut(id uint) (models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return booking, err
	}
	if !strings.EqualFold(booking.Status, models.BookingStatusCheckedIn) {
		return booking, errors.New("booking_not_checked_in")
	}

	now := time.Now()
	bookingID := booking.ID
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"checked_out_at": now,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to check out: %w", err)
		}

		ref, rErr := utils.GenerateBudgetReference(now)
		if rErr != nil {
			return rErr
		}
		entry := models.BudgetEntry{
			EntryDate:   now,
			Type:        models.BudgetTypeIncome,
			Description: fmt.Sprintf("Guest stay %s - %s", booking.ReferenceCode, booking.GuestName),
			Amount:      SignedAmount(models.BudgetTypeIncome, booking.TotalAmount),
			Category:    "Guest Room",
			Reference:   ref,
			BookingID:   &bookingID,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return booking, err
	}
	booking.Status = models.BookingStatusCheckedOut
	booking.CheckedOutAt = &now
	return booking, nil
}

// SetStatus handles the remaining transitions (Cancelled, No-Show,
// Confirmed...). Checked-In/Checked-Out must go through their own methods
// so timestamps and budget entries are not skipped.
func (s *BookingService) SetStatus(id uint, status string) (models.Booking, error) {
	switch status {
	case models.BookingStatusInquiry, models.BookingStatusReserved, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusNoShow:
	default:
		return models.Booking{}, errors.New("invalid_booking_status")
	}
	booking, err := s.Get(id)
	if err != nil {
		return booking, err
	}
	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return booking, fmt.Errorf("failed to update status: %w", err)
	}
	booking.Status = status
	return booking, nil
}
