package services

import (
	"strings"
	"testing"
	"time"

	"property-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, 100.0, SignedAmount(models.BudgetTypeIncome, 100))
	assert.Equal(t, 100.0, SignedAmount(models.BudgetTypeIncome, -100))
	assert.Equal(t, -250.0, SignedAmount(models.BudgetTypeExpense, 250))
	assert.Equal(t, -250.0, SignedAmount(models.BudgetTypeExpense, -250))
}

func TestCreateNormalizesEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)

	entry := models.BudgetEntry{
		Type:        "expense",
		Description: "Plumbing repair",
		Amount:      450,
		Category:    "Maintenance",
	}
	require.NoError(t, svc.Create(&entry))

	assert.Equal(t, models.BudgetTypeExpense, entry.Type)
	assert.Equal(t, -450.0, entry.Amount)
	assert.False(t, entry.EntryDate.IsZero())
	assert.True(t, strings.HasPrefix(entry.Reference, "BGT-"), entry.Reference)

	err := svc.Create(&models.BudgetEntry{Type: "Transfer", Amount: 10})
	assert.EqualError(t, err, "invalid_budget_type")
}

func TestListAndSummarize(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)

	aug := func(d int) time.Time { return time.Date(2024, time.August, d, 12, 0, 0, 0, time.UTC) }
	seed := []models.BudgetEntry{
		{EntryDate: aug(1), Type: models.BudgetTypeIncome, Amount: 3500, Category: "Rent"},
		{EntryDate: aug(5), Type: models.BudgetTypeIncome, Amount: 840, Category: "Guest Room"},
		{EntryDate: aug(10), Type: models.BudgetTypeExpense, Amount: -450, Category: "Maintenance"},
		{EntryDate: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
			Type: models.BudgetTypeIncome, Amount: 3500, Category: "Rent"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	entries, err := svc.List(BudgetFilter{Year: 2024, Month: time.August})
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = svc.List(BudgetFilter{Year: 2024, Month: time.August, Category: "Rent"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	sum, err := svc.Summarize(2024, time.August)
	require.NoError(t, err)
	assert.Equal(t, 4340.0, sum.Income)
	assert.Equal(t, 450.0, sum.Expense)
	assert.Equal(t, 3890.0, sum.Net)
}
