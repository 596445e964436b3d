package services

import (
	"testing"
	"time"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantsWorkbook(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	room := createTestRoom(t, db, "101", 3500, 120)
	tenant := createTestTenant(t, db, room, "John Smith", "john@example.com")
	require.NoError(t, db.Model(&tenant).Update("negotiated_price", 3200.0).Error)

	f, err := svc.TenantsWorkbook()
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", name)

	rent, err := f.GetCellValue("Sheet1", "E2")
	require.NoError(t, err)
	assert.Equal(t, "3200", rent)
}

func TestBudgetWorkbook(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	budget := NewBudgetService(db)

	aug := func(d int) time.Time { return time.Date(2024, time.August, d, 12, 0, 0, 0, time.UTC) }
	seed := []models.BudgetEntry{
		{EntryDate: aug(1), Type: models.BudgetTypeIncome, Amount: 3500, Category: "Rent", Description: "Rent 101"},
		{EntryDate: aug(10), Type: models.BudgetTypeExpense, Amount: -450, Category: "Maintenance", Description: "Plumbing"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	f, err := svc.BudgetWorkbook(budget, 2024, time.August)
	require.NoError(t, err)
	defer f.Close()

	// Entries are newest first.
	desc, err := f.GetCellValue("Sheet1", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", desc)

	// Summary block sits two rows under the last entry.
	label, err := f.GetCellValue("Sheet1", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Income", label)

	net, err := f.GetCellValue("Sheet1", "B7")
	require.NoError(t, err)
	assert.Equal(t, "3050", net)
}
