package repository

import (
	"time"

	"cobbler_crm/internal/models"

	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *models.Expense) error
	GetByID(id uint) (*models.Expense, error)
	GetAll() ([]models.Expense, error)
	GetByCategory(category string) ([]models.Expense, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Expense, error)
	GetByEmployeeID(employeeID uint) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uint) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) GetByCategory(category string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("category = ?", category).Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) GetByEmployeeID(employeeID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("employee_id = ?", employeeID).Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}
