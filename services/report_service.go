package services

import (
	"fmt"
	"time"

	"property-backend/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService builds xlsx workbooks for download.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

const reportSheet = "Sheet1"

// TenantsWorkbook lists active tenants with their effective rent.
func (s *ReportService) TenantsWorkbook() (*excelize.File, error) {
	var tenants []models.Tenant
	if err := s.DB.Where("active = ?", true).Preload("Room").Order("id ASC").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}

	f := excelize.NewFile()

	headers := []string{"Room", "Name", "Email", "Phone", "Effective Rent", "Last Payment", "Payment Status", "Lease End"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(reportSheet, cell, h)
	}

	for i, t := range tenants {
		row := i + 2
		values := []interface{}{
			t.Room.RoomNumber,
			t.FullName,
			t.Email,
			t.Phone,
			t.EffectiveRent(),
			formatDatePtr(t.LastPaymentDate),
			t.PaymentStatus,
			formatDatePtr(t.LeaseEndDate),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(reportSheet, cell, v)
		}
	}
	return f, nil
}

// BudgetWorkbook lists one month's entries plus a summary row.
func (s *ReportService) BudgetWorkbook(budget *BudgetService, year int, month time.Month) (*excelize.File, error) {
	entries, err := budget.List(BudgetFilter{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	summary, err := budget.Summarize(year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	headers := []string{"Date", "Type", "Description", "Amount", "Category", "Method", "Reference", "Receipt"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(reportSheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		values := []interface{}{
			e.EntryDate.Format("2006-01-02"),
			e.Type,
			e.Description,
			e.Amount,
			e.Category,
			e.PaymentMethod,
			e.Reference,
			e.ReceiptRef,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(reportSheet, cell, v)
		}
		row++
	}

	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Income")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), summary.Income)
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row+1), "Expense")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row+1), summary.Expense)
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row+2), "Net")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row+2), summary.Net)

	return f, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
