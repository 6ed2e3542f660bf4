package services

import (
	"log"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/workflow"
)

type EmployeeService interface {
	CreateEmployee(employee *models.Employee) error
	GetEmployeeByID(id uint) (*models.Employee, error)
	GetAllEmployees() ([]models.Employee, error)
	UpdateEmployee(employee *models.Employee) error
	DeleteEmployee(id uint) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	expenseRepo  repository.ExpenseRepository
	cache        ReportCache
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, expenseRepo repository.ExpenseRepository, cache ReportCache) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, expenseRepo: expenseRepo, cache: cache}
}

func validateEmployee(employee *models.Employee) error {
	verr := &workflow.ValidationError{}

	if employee.Name == "" {
		verr.Add("name", "name is required")
	}
	if employee.MonthlySalary <= 0 {
		verr.Add("monthly_salary", "monthly salary must be greater than zero")
	}
	return verr.OrNil()
}

// CreateEmployee registers the employee and books exactly one matching
// Staff Salaries expense for the month they were added.
func (s *employeeService) CreateEmployee(employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	if employee.DateAdded.IsZero() {
		employee.DateAdded = time.Now()
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return err
	}

	salaryExpense := &models.Expense{
		Title:      "Salary - " + employee.Name,
		Amount:     employee.MonthlySalary,
		Category:   models.CategoryStaffSalaries,
		Date:       employee.DateAdded,
		EmployeeID: &employee.ID,
	}
	if err := s.expenseRepo.Create(salaryExpense); err != nil {
		// no orphan employee without its salary expense
		if delErr := s.employeeRepo.Delete(employee.ID); delErr != nil {
			log.Printf("Warning: failed to roll back employee %d: %v", employee.ID, delErr)
		}
		return err
	}

	s.invalidateReports()
	return nil
}

func (s *employeeService) invalidateReports() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReports(); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}
}

func (s *employeeService) GetEmployeeByID(id uint) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

func (s *employeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetAll()
}

func (s *employeeService) UpdateEmployee(employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	if _, err := s.employeeRepo.GetByID(employee.ID); err != nil {
		return err
	}
	return s.employeeRepo.Update(employee)
}

func (s *employeeService) DeleteEmployee(id uint) error {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(id)
}
