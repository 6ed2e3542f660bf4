package services

import (
	"testing"
	"time"

	"cobbler_crm/internal/mocks"
	"cobbler_crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExpenseService_CreateExpense(t *testing.T) {
	t.Run("valid expense persisted", func(t *testing.T) {
		mockRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)
		mockRepo.On("Create", mock.AnythingOfType("*models.Expense")).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewExpenseService(mockRepo, mockCache)
		expense := &models.Expense{Title: "Glue", Amount: 300, Category: "Raw Materials"}
		err := service.CreateExpense(expense)

		assert.NoError(t, err)
		assert.False(t, expense.Date.IsZero())
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		expense *models.Expense
	}{
		{"missing title", &models.Expense{Amount: 300, Category: "Rent"}},
		{"zero amount", &models.Expense{Title: "Rent", Amount: 0, Category: "Rent"}},
		{"negative amount", &models.Expense{Title: "Rent", Amount: -5, Category: "Rent"}},
		{"unknown category", &models.Expense{Title: "Bribe", Amount: 100, Category: "Other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockExpenseRepository)
			service := NewExpenseService(mockRepo, nil)
			err := service.CreateExpense(tt.expense)
			assert.Error(t, err)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestExpenseService_GetExpenseStats(t *testing.T) {
	t.Run("empty collection yields zero summary", func(t *testing.T) {
		mockRepo := new(mocks.MockExpenseRepository)
		mockRepo.On("GetAll").Return([]models.Expense{}, nil)

		service := NewExpenseService(mockRepo, nil)
		stats, err := service.GetExpenseStats(nil, nil)

		assert.NoError(t, err)
		assert.Zero(t, stats.TotalAmount)
		assert.Zero(t, stats.TotalCount)
		assert.NotNil(t, stats.ByCategory)
		assert.Empty(t, stats.ByCategory)
	})

	t.Run("per category totals", func(t *testing.T) {
		expenses := []models.Expense{
			{Title: "Glue", Amount: 300, Category: "Raw Materials"},
			{Title: "Leather", Amount: 700, Category: "Raw Materials"},
			{Title: "Salary - Anita", Amount: 18000, Category: models.CategoryStaffSalaries},
		}
		mockRepo := new(mocks.MockExpenseRepository)
		mockRepo.On("GetAll").Return(expenses, nil)

		service := NewExpenseService(mockRepo, nil)
		stats, err := service.GetExpenseStats(nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, 19000.0, stats.TotalAmount)
		assert.Equal(t, 3, stats.TotalCount)
		assert.Equal(t, CategoryStat{Count: 2, Amount: 1000}, stats.ByCategory["Raw Materials"])
		assert.Equal(t, CategoryStat{Count: 1, Amount: 18000}, stats.ByCategory[models.CategoryStaffSalaries])
	})

	t.Run("date range delegates to ranged query", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		mockRepo := new(mocks.MockExpenseRepository)
		mockRepo.On("GetByDateRange", from, to).Return([]models.Expense{}, nil)

		service := NewExpenseService(mockRepo, nil)
		_, err := service.GetExpenseStats(&from, &to)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
