package controllers

import (
	"net/http"
	"strconv"
	"time"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	Budget *services.BudgetService
}

func NewBudgetController(svc *services.BudgetService) *BudgetController {
	return &BudgetController{Budget: svc}
}

type createBudgetPayload struct {
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category"`
	Method      string  `json:"method"`
	TenantID    *uint   `json:"tenantId,omitempty"`
	BookingID   *uint   `json:"bookingId,omitempty"`
}

// Create handles POST /api/budget.
func (ctrl *BudgetController) Create(c *gin.Context) {
	var payload createBudgetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	entry := models.BudgetEntry{
		Type:          payload.Type,
		Description:   payload.Description,
		Amount:        payload.Amount,
		Category:      payload.Category,
		PaymentMethod: payload.Method,
		TenantID:      payload.TenantID,
		BookingID:     payload.BookingID,
	}
	if payload.Date != "" {
		d, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date")
			return
		}
		entry.EntryDate = d
	}

	if err := ctrl.Budget.Create(&entry); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func yearMonthQuery(c *gin.Context) (int, time.Month) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	if month < 1 || month > 12 {
		return year, 0
	}
	return year, time.Month(month)
}

// List handles GET /api/budget?year=&month=&type=&category=.
func (ctrl *BudgetController) List(c *gin.Context) {
	year, month := yearMonthQuery(c)
	entries, err := ctrl.Budget.List(services.BudgetFilter{
		Year:     year,
		Month:    month,
		Type:     c.Query("type"),
		Category: c.Query("category"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}

// Summary handles GET /api/budget/summary?year=&month=.
func (ctrl *BudgetController) Summary(c *gin.Context) {
	year, month := yearMonthQuery(c)
	if year == 0 || month == 0 {
		now := time.Now()
		year, month = now.Year(), now.Month()
	}
	summary, err := ctrl.Budget.Summarize(year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
