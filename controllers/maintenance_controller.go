package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type MaintenanceController struct {
	Maintenance *services.MaintenanceService
}

func NewMaintenanceController(svc *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Maintenance: svc}
}

type createMaintenancePayload struct {
	RoomArea      string          `json:"roomArea" binding:"required"`
	IssueType     string          `json:"issueType"`
	Priority      string          `json:"priority"`
	Description   string          `json:"description" binding:"required"`
	Reporter      string          `json:"reporter"`
	Contact       string          `json:"contact"`
	Assignee      string          `json:"assignee"`
	EstimatedCost float64         `json:"estimatedCost"`
	ScheduledDate string          `json:"scheduledDate"` // YYYY-MM-DD
	Parts         json.RawMessage `json:"parts,omitempty"`
	Notes         string          `json:"notes"`
}

// Create handles POST /api/maintenance.
func (ctrl *MaintenanceController) Create(c *gin.Context) {
	var payload createMaintenancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	req := models.MaintenanceRequest{
		RoomArea:      payload.RoomArea,
		IssueType:     payload.IssueType,
		Priority:      payload.Priority,
		Description:   payload.Description,
		Reporter:      payload.Reporter,
		Contact:       payload.Contact,
		Assignee:      payload.Assignee,
		EstimatedCost: payload.EstimatedCost,
		Notes:         payload.Notes,
	}
	if len(payload.Parts) > 0 {
		req.Parts = datatypes.JSON(payload.Parts)
	}
	if payload.ScheduledDate != "" {
		if d, err := time.Parse("2006-01-02", payload.ScheduledDate); err == nil {
			req.ScheduledDate = &d
		}
	}

	if err := ctrl.Maintenance.Create(&req); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

// List handles GET /api/maintenance?status=&priority=.
func (ctrl *MaintenanceController) List(c *gin.Context) {
	reqs, err := ctrl.Maintenance.List(c.Query("status"), c.Query("priority"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reqs)
}

// Get handles GET /api/maintenance/:id.
func (ctrl *MaintenanceController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid request id")
		return
	}
	req, err := ctrl.Maintenance.Get(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

// Update handles PATCH /api/maintenance/:id.
func (ctrl *MaintenanceController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid request id")
		return
	}
	var upd services.MaintenanceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	req, err := ctrl.Maintenance.Update(id, upd)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}
