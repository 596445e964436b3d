package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// statusForError maps the services' sentinel error strings to HTTP codes.
// Anything unknown is treated as an internal failure.
func statusForError(err error) int {
	switch err.Error() {
	case "tenant_not_found", "room_not_found", "booking_not_found",
		"submission_not_found", "request_not_found":
		return http.StatusNotFound
	case "room_occupied", "room_unavailable", "submission_ambiguous",
		"submission_already_processed", "already_checked_in",
		"booking_not_checked_in", "booking_not_active":
		return http.StatusConflict
	case "invalid_date_range", "invalid_amount", "invalid_booking_status",
		"invalid_status", "invalid_budget_type", "unknown_form_kind",
		"guest_name_missing", "room_number_missing", "applicant_name_missing",
		"moveout_details_missing", "payment_details_missing", "description_missing",
		"submission_wrong_kind":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// getStringFromMap pulls a trimmed string out of a loosely-typed payload,
// trying the given keys in order.
func getStringFromMap(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s, ok2 := v.(string); ok2 {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return ""
}
