package services

import (
	"errors"
	"testing"
	"time"

	"cobbler_crm/internal/mocks"
	"cobbler_crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Run("books exactly one salary expense", func(t *testing.T) {
		mockEmployeeRepo := new(mocks.MockEmployeeRepository)
		mockExpenseRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)

		mockEmployeeRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil).Run(func(args mock.Arguments) {
			employee := args.Get(0).(*models.Employee)
			employee.ID = 7
		})

		var createdExpenses []*models.Expense
		mockExpenseRepo.On("Create", mock.AnythingOfType("*models.Expense")).Return(nil).Run(func(args mock.Arguments) {
			createdExpenses = append(createdExpenses, args.Get(0).(*models.Expense))
		})
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEmployeeService(mockEmployeeRepo, mockExpenseRepo, mockCache)
		employee := &models.Employee{
			Name:          "Anita",
			Role:          "Cobbler",
			MonthlySalary: 18000,
			DateAdded:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		}
		err := service.CreateEmployee(employee)

		assert.NoError(t, err)
		assert.Len(t, createdExpenses, 1)
		expense := createdExpenses[0]
		assert.Equal(t, models.CategoryStaffSalaries, expense.Category)
		assert.Equal(t, employee.MonthlySalary, expense.Amount)
		assert.Equal(t, employee.DateAdded, expense.Date)
		assert.NotNil(t, expense.EmployeeID)
		assert.Equal(t, uint(7), *expense.EmployeeID)
		mockEmployeeRepo.AssertExpectations(t)
	})

	t.Run("salary expense invalidates cached reports", func(t *testing.T) {
		mockEmployeeRepo := new(mocks.MockEmployeeRepository)
		mockExpenseRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)

		mockEmployeeRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil)
		mockExpenseRepo.On("Create", mock.AnythingOfType("*models.Expense")).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEmployeeService(mockEmployeeRepo, mockExpenseRepo, mockCache)
		err := service.CreateEmployee(&models.Employee{Name: "Anita", MonthlySalary: 18000})

		assert.NoError(t, err)
		mockCache.AssertCalled(t, "InvalidateReports")
	})

	t.Run("invalid employee books nothing", func(t *testing.T) {
		mockEmployeeRepo := new(mocks.MockEmployeeRepository)
		mockExpenseRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)

		service := NewEmployeeService(mockEmployeeRepo, mockExpenseRepo, mockCache)
		err := service.CreateEmployee(&models.Employee{Name: "Anita", MonthlySalary: 0})

		assert.Error(t, err)
		mockEmployeeRepo.AssertNotCalled(t, "Create", mock.Anything)
		mockExpenseRepo.AssertNotCalled(t, "Create", mock.Anything)
		mockCache.AssertNotCalled(t, "InvalidateReports")
	})

	t.Run("failed salary expense rolls the employee back", func(t *testing.T) {
		mockEmployeeRepo := new(mocks.MockEmployeeRepository)
		mockExpenseRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)

		mockEmployeeRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*models.Employee).ID = 7
		})
		expenseErr := errors.New("insert failed")
		mockExpenseRepo.On("Create", mock.AnythingOfType("*models.Expense")).Return(expenseErr)
		mockEmployeeRepo.On("Delete", uint(7)).Return(nil)

		service := NewEmployeeService(mockEmployeeRepo, mockExpenseRepo, mockCache)
		err := service.CreateEmployee(&models.Employee{Name: "Anita", MonthlySalary: 18000})

		assert.ErrorIs(t, err, expenseErr)
		mockEmployeeRepo.AssertCalled(t, "Delete", uint(7))
		mockCache.AssertNotCalled(t, "InvalidateReports")
	})

	t.Run("date added defaults to now", func(t *testing.T) {
		mockEmployeeRepo := new(mocks.MockEmployeeRepository)
		mockExpenseRepo := new(mocks.MockExpenseRepository)
		mockCache := new(mocks.MockReportCache)
		mockEmployeeRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil)
		mockExpenseRepo.On("Create", mock.AnythingOfType("*models.Expense")).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEmployeeService(mockEmployeeRepo, mockExpenseRepo, mockCache)
		employee := &models.Employee{Name: "Anita", MonthlySalary: 18000}
		err := service.CreateEmployee(employee)

		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), employee.DateAdded, time.Second)
	})
}
