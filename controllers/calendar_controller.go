package controllers

import (
	"net/http"
	"strconv"
	"time"

	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	Calendar *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{Calendar: svc}
}

// Upcoming lists calendar events from now onward. ?limit= caps the result
// (default 50).
func (cc *CalendarController) Upcoming(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	events, err := cc.Calendar.Upcoming(time.Now(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"events": events})
}

// Regenerate rebuilds the rent-due events for the coming month on demand.
// The scheduler does this on the 1st; this endpoint covers manual refreshes
// after tenant changes.
func (cc *CalendarController) Regenerate(c *gin.Context) {
	created, err := cc.Calendar.RegenerateRentDue(time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"created": created})
}
