package controllers

import (
	"fmt"
	"net/http"
	"time"

	"property-backend/services"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	Reports *services.ReportService
	Budget  *services.BudgetService
}

func NewReportController(reports *services.ReportService, budget *services.BudgetService) *ReportController {
	return &ReportController{Reports: reports, Budget: budget}
}

// Tenants handles GET /api/reports/tenants.xlsx.
func (ctrl *ReportController) Tenants(c *gin.Context) {
	f, err := ctrl.Reports.TenantsWorkbook()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename=tenants.xlsx`)
	if err := f.Write(c.Writer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to write workbook")
	}
}

// Budget handles GET /api/reports/budget.xlsx?year=&month=.
func (ctrl *ReportController) BudgetReport(c *gin.Context) {
	year, month := yearMonthQuery(c)
	if year == 0 || month == 0 {
		now := time.Now()
		year, month = now.Year(), now.Month()
	}

	f, err := ctrl.Reports.BudgetWorkbook(ctrl.Budget, year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=budget-%04d-%02d.xlsx`, year, int(month)))
	if err := f.Write(c.Writer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to write workbook")
	}
}
