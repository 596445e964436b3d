package controllers

import (
	"net/http"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	Apps *services.ApplicationService
	Subs *services.SubmissionService
}

func NewApplicationController(apps *services.ApplicationService, subs *services.SubmissionService) *ApplicationController {
	return &ApplicationController{Apps: apps, Subs: subs}
}

type approveApplicationPayload struct {
	RoomNumber string `json:"roomNumber"`
}

// ListPending handles GET /api/applications.
func (ctrl *ApplicationController) ListPending(c *gin.Context) {
	subs, err := ctrl.Subs.ListPending(models.SubmissionKindApplication)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, subs)
}

// Lookup handles GET /api/applications/lookup?name=&email= — the legacy
// identity matcher. Ambiguity is surfaced, never guessed away.
func (ctrl *ApplicationController) Lookup(c *gin.Context) {
	name := c.Query("name")
	email := c.Query("email")
	if name == "" || email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required")
		return
	}
	sub, err := ctrl.Subs.FindByIdentity(models.SubmissionKindApplication, name, email)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sub)
}

// Approve handles POST /api/applications/:id/approve.
func (ctrl *ApplicationController) Approve(c *gin.Context) {
	var payload approveApplicationPayload
	_ = c.ShouldBindJSON(&payload) // body optional; room may come from the form

	tenant, err := ctrl.Apps.Approve(c.Param("id"), payload.RoomNumber)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// Reject handles POST /api/applications/:id/reject.
func (ctrl *ApplicationController) Reject(c *gin.Context) {
	if err := ctrl.Apps.Reject(c.Param("id")); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "application rejected")
}
