package controllers

import (
	"net/http"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

// FormController takes the public intake submissions. The panels post free
// JSON; the submitter identity is lifted out for later matching and the
// whole payload is stored as-is.
type FormController struct {
	Subs *services.SubmissionService
}

func NewFormController(subs *services.SubmissionService) *FormController {
	return &FormController{Subs: subs}
}

func (ctrl *FormController) submit(c *gin.Context, kind string, nameKeys, emailKeys []string) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	name := getStringFromMap(payload, nameKeys...)
	email := getStringFromMap(payload, emailKeys...)
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	sub, err := ctrl.Subs.Submit(kind, name, email, payload)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"submissionId": sub.SubmissionID})
}

// SubmitApplication handles POST /api/forms/applications.
func (ctrl *FormController) SubmitApplication(c *gin.Context) {
	ctrl.submit(c, models.SubmissionKindApplication,
		[]string{"fullName", "name"}, []string{"email"})
}

// SubmitMoveOut handles POST /api/forms/move-outs.
func (ctrl *FormController) SubmitMoveOut(c *gin.Context) {
	ctrl.submit(c, models.SubmissionKindMoveOut,
		[]string{"tenantName", "fullName", "name"}, []string{"email"})
}

// SubmitGuestCheckin handles POST /api/forms/guest-checkins.
func (ctrl *FormController) SubmitGuestCheckin(c *gin.Context) {
	ctrl.submit(c, models.SubmissionKindGuestCheckin,
		[]string{"guestName", "fullName", "name"}, []string{"email"})
}
