package controllers

import (
	"net/http"
	"strings"

	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type TenantController struct {
	Tenants *services.TenantService
}

func NewTenantController(svc *services.TenantService) *TenantController {
	return &TenantController{Tenants: svc}
}

// List handles GET /api/tenants?active=true.
func (ctrl *TenantController) List(c *gin.Context) {
	activeOnly := strings.EqualFold(c.DefaultQuery("active", "true"), "true")
	tenants, err := ctrl.Tenants.List(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenants)
}

// Get handles GET /api/tenants/:id.
func (ctrl *TenantController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid tenant id")
		return
	}
	tenant, err := ctrl.Tenants.Get(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// Update handles PATCH /api/tenants/:id.
func (ctrl *TenantController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid tenant id")
		return
	}
	var fields services.UpdatableTenantFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	tenant, err := ctrl.Tenants.Update(id, fields)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}
