package mocks

import (
	"time"

	"cobbler_crm/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(enquiry *models.Enquiry) error {
	args := m.Called(enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) GetByID(id uint) (*models.Enquiry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) GetAll() ([]models.Enquiry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) GetByStage(stage string) ([]models.Enquiry, error) {
	args := m.Called(stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Enquiry, error) {
	args := m.Called(startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Update(enquiry *models.Enquiry) error {
	args := m.Called(enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetAll() ([]models.Expense, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetByCategory(category string) ([]models.Expense, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Expense, error) {
	args := m.Called(startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetByEmployeeID(employeeID uint) ([]models.Expense, error) {
	args := m.Called(employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Update(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetAll() ([]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetBusiness() (*models.BusinessSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveBusiness(settings *models.BusinessSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetStaff() ([]models.StaffMember, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StaffMember), args.Error(1)
}

func (m *MockSettingsRepository) GetStaffByID(id uint) (*models.StaffMember, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffMember), args.Error(1)
}

func (m *MockSettingsRepository) CreateStaff(staff *models.StaffMember) error {
	args := m.Called(staff)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateStaff(staff *models.StaffMember) error {
	args := m.Called(staff)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteStaff(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetSecurity() (*models.SecuritySettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SecuritySettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSecurity(settings *models.SecuritySettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

// MockReportCache records invalidations; reads always miss unless primed.
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) GetReport(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockReportCache) SetReport(key string, value interface{}, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}

func (m *MockReportCache) InvalidateReports() error {
	args := m.Called()
	return args.Error(0)
}
