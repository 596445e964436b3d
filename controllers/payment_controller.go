package controllers

import (
	"net/http"
	"time"

	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: svc}
}

type recordPaymentPayload struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	TenantName string  `json:"tenantName" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Method     string  `json:"method"`
	Partial    bool    `json:"partial"`
	PaidDate   string  `json:"paidDate"` // YYYY-MM-DD, defaults to today
}

// Record handles POST /api/payments.
func (ctrl *PaymentController) Record(c *gin.Context) {
	var payload recordPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	in := services.RecordPaymentInput{
		RoomNumber: payload.RoomNumber,
		TenantName: payload.TenantName,
		Amount:     payload.Amount,
		Method:     payload.Method,
		Partial:    payload.Partial,
	}
	if payload.PaidDate != "" {
		d, err := time.Parse("2006-01-02", payload.PaidDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid paidDate")
			return
		}
		in.PaidAt = d
	}

	entry, err := ctrl.Payments.RecordPayment(in)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}
