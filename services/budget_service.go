package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/utils"

	"gorm.io/gorm"
)

type BudgetService struct {
	DB *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{DB: db}
}

// SignedAmount normalizes the stored sign: Income is always positive,
// Expense always negative, regardless of the sign the caller supplied.
func SignedAmount(entryType string, amount float64) float64 {
	abs := math.Abs(amount)
	if strings.EqualFold(entryType, models.BudgetTypeExpense) {
		return -abs
	}
	return abs
}

// Create normalizes the amount sign, fills the entry date and generates a
// reference when the caller did not supply one.
func (s *BudgetService) Create(entry *models.BudgetEntry) error {
	switch {
	case strings.EqualFold(entry.Type, models.BudgetTypeIncome):
		entry.Type = models.BudgetTypeIncome
	case strings.EqualFold(entry.Type, models.BudgetTypeExpense):
		entry.Type = models.BudgetTypeExpense
	default:
		return errors.New("invalid_budget_type")
	}

	entry.Amount = SignedAmount(entry.Type, entry.Amount)
	if entry.EntryDate.IsZero() {
		entry.EntryDate = time.Now()
	}
	if strings.TrimSpace(entry.Reference) == "" {
		ref, err := utils.GenerateBudgetReference(entry.EntryDate)
		if err != nil {
			return err
		}
		entry.Reference = ref
	}
	if err := s.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create budget entry: %w", err)
	}
	return nil
}

// BudgetFilter narrows List; zero values mean "no filter".
type BudgetFilter struct {
	Year     int
	Month    time.Month
	Type     string
	Category string
}

func (s *BudgetService) List(f BudgetFilter) ([]models.BudgetEntry, error) {
	q := s.DB.Order("entry_date DESC, id DESC")
	if f.Year != 0 && f.Month != 0 {
		start := time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("entry_date >= ? AND entry_date < ?", start, start.AddDate(0, 1, 0))
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var entries []models.BudgetEntry
	err := q.Find(&entries).Error
	return entries, err
}

// MonthlySummary is income/expense/net for one month.
type MonthlySummary struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

func (s *BudgetService) Summarize(year int, month time.Month) (MonthlySummary, error) {
	entries, err := s.List(BudgetFilter{Year: year, Month: month})
	if err != nil {
		return MonthlySummary{}, err
	}
	sum := MonthlySummary{Year: year, Month: int(month)}
	for _, e := range entries {
		if e.Amount >= 0 {
			sum.Income += e.Amount
		} else {
			sum.Expense += -e.Amount
		}
	}
	sum.Net = sum.Income - sum.Expense
	return sum, nil
}
