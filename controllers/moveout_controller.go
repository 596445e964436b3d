package controllers

import (
	"net/http"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

type MoveOutController struct {
	MoveOuts *services.MoveOutService
	Subs     *services.SubmissionService
}

func NewMoveOutController(moveOuts *services.MoveOutService, subs *services.SubmissionService) *MoveOutController {
	return &MoveOutController{MoveOuts: moveOuts, Subs: subs}
}

type completeMoveOutPayload struct {
	ReturnDeposit bool `json:"returnDeposit"`
}

// ListPending handles GET /api/move-outs.
func (ctrl *MoveOutController) ListPending(c *gin.Context) {
	subs, err := ctrl.Subs.ListPending(models.SubmissionKindMoveOut)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, subs)
}

// Complete handles POST /api/move-outs/:id/complete.
func (ctrl *MoveOutController) Complete(c *gin.Context) {
	var payload completeMoveOutPayload
	_ = c.ShouldBindJSON(&payload)

	if err := ctrl.MoveOuts.Complete(c.Param("id"), payload.ReturnDeposit); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "move-out completed")
}
