package controllers

import (
	"errors"
	"net/http"
	"time"

	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// CreateBookingRequest is what the booking panel posts. Dates are
// YYYY-MM-DD.
type CreateBookingRequest struct {
	RoomID        uint    `json:"room_id" binding:"required"`
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      string  `json:"check_out" binding:"required"`
	DailyRate     float64 `json:"daily_rate"`
	GuestCount    int     `json:"guest_count"`
	GuestName     string  `json:"guest_name" binding:"required"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    string  `json:"guest_phone"`
	Purpose       string  `json:"purpose"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	Notes         string  `json:"notes"`
}

func parseDateParam(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

// Create handles POST /api/bookings.
func (ctrl *BookingController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	checkIn, err := parseDateParam(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in date")
		return
	}
	checkOut, err := parseDateParam(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out date")
		return
	}

	booking, err := ctrl.Bookings.Create(services.CreateBookingInput{
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		DailyRate:     req.DailyRate,
		GuestCount:    req.GuestCount,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		Purpose:       req.Purpose,
		PaymentStatus: req.PaymentStatus,
		Status:        req.Status,
		Source:        req.Source,
		Notes:         req.Notes,
	})
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			utils.JSONError(c, http.StatusConflict, "duplicate booking reference, retry")
			return
		}
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// List handles GET /api/bookings?status=.
func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.Bookings.List(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id.
func (ctrl *BookingController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := ctrl.Bookings.Get(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Availability handles GET /api/bookings/availability?room_id=&from=&to=.
func (ctrl *BookingController) Availability(c *gin.Context) {
	var query struct {
		RoomID uint   `form:"room_id" binding:"required"`
		From   string `form:"from" binding:"required"`
		To     string `form:"to" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id, from and to are required")
		return
	}
	from, err := parseDateParam(query.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := parseDateParam(query.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date")
		return
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "to must be after from")
		return
	}

	avail, err := ctrl.Bookings.CheckAvailability(query.RoomID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, avail)
}

// Board handles GET /api/rooms/board.
func (ctrl *BookingController) Board(c *gin.Context) {
	board, err := ctrl.Bookings.StatusBoard(time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, board)
}

// CheckIn handles POST /api/bookings/:id/checkin.
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := ctrl.Bookings.CheckIn(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckOut handles POST /api/bookings/:id/checkout.
func (ctrl *BookingController) CheckOut(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := ctrl.Bookings.CheckOut(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PATCH /api/bookings/:id/status for the transitions
// that carry no side effects (Cancelled, No-Show, Confirmed...).
func (ctrl *BookingController) SetStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	booking, err := ctrl.Bookings.SetStatus(id, payload.Status)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
