package services

import (
	"log"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/workflow"
)

// CategoryStat is the per-category slice of the expense summary.
type CategoryStat struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type ExpenseStats struct {
	TotalAmount float64                 `json:"total_amount"`
	TotalCount  int                     `json:"total_count"`
	ByCategory  map[string]CategoryStat `json:"by_category"`
}

type ExpenseService interface {
	CreateExpense(expense *models.Expense) error
	GetExpenseByID(id uint) (*models.Expense, error)
	GetAllExpenses() ([]models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	DeleteExpense(id uint) error
	GetExpenseStats(startDate, endDate *time.Time) (*ExpenseStats, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	cache       ReportCache
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, cache ReportCache) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, cache: cache}
}

func validateExpense(expense *models.Expense) error {
	verr := &workflow.ValidationError{}

	if expense.Title == "" {
		verr.Add("title", "title is required")
	}
	if expense.Amount <= 0 {
		verr.Add("amount", "amount must be greater than zero")
	}
	if !models.IsValidExpenseCategory(expense.Category) {
		verr.Add("category", "unknown expense category: "+expense.Category)
	}
	return verr.OrNil()
}

func (s *expenseService) CreateExpense(expense *models.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return err
	}
	s.invalidateReports()
	return nil
}

func (s *expenseService) GetExpenseByID(id uint) (*models.Expense, error) {
	return s.expenseRepo.GetByID(id)
}

func (s *expenseService) GetAllExpenses() ([]models.Expense, error) {
	return s.expenseRepo.GetAll()
}

func (s *expenseService) UpdateExpense(expense *models.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}
	if _, err := s.expenseRepo.GetByID(expense.ID); err != nil {
		return err
	}
	if err := s.expenseRepo.Update(expense); err != nil {
		return err
	}
	s.invalidateReports()
	return nil
}

func (s *expenseService) DeleteExpense(id uint) error {
	if _, err := s.expenseRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateReports()
	return nil
}

// GetExpenseStats summarises expenses per category, optionally bounded to
// a date range. An empty collection yields a zero-valued summary.
func (s *expenseService) GetExpenseStats(startDate, endDate *time.Time) (*ExpenseStats, error) {
	var expenses []models.Expense
	var err error
	if startDate != nil && endDate != nil {
		expenses, err = s.expenseRepo.GetByDateRange(*startDate, *endDate)
	} else {
		expenses, err = s.expenseRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	stats := &ExpenseStats{ByCategory: make(map[string]CategoryStat)}
	for _, e := range expenses {
		stats.TotalAmount += e.Amount
		stats.TotalCount++
		cat := stats.ByCategory[e.Category]
		cat.Count++
		cat.Amount += e.Amount
		stats.ByCategory[e.Category] = cat
	}
	return stats, nil
}

func (s *expenseService) invalidateReports() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReports(); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}
}
