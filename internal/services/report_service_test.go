package services

import (
	"testing"
	"time"

	"cobbler_crm/internal/mocks"
	"cobbler_crm/internal/models"
	"cobbler_crm/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func reportEnquiry(id uint, stage models.Stage, status models.EnquiryStatus, quote float64, date time.Time) models.Enquiry {
	return models.Enquiry{
		ID:           id,
		CustomerName: "Customer",
		Phone:        "9876543210",
		InquiryType:  string(models.InquiryInstagram),
		Status:       string(status),
		CurrentStage: string(stage),
		QuotedAmount: quote,
		Date:         date,
	}
}

func TestReportService_EmptyCollections(t *testing.T) {
	mockEnquiryRepo := new(mocks.MockEnquiryRepository)
	mockExpenseRepo := new(mocks.MockExpenseRepository)
	mockEnquiryRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return([]models.Enquiry{}, nil)
	mockExpenseRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return([]models.Expense{}, nil)

	service := NewReportService(mockEnquiryRepo, mockExpenseRepo, nil, time.Minute)

	data, err := service.GetReportData("month")
	assert.NoError(t, err)
	assert.Zero(t, data.TotalEnquiries)
	assert.Zero(t, data.TotalRevenue)
	assert.Zero(t, data.TotalExpenses)
	assert.Zero(t, data.NetIncome)
	assert.Empty(t, data.ByStage)
	assert.NotNil(t, data.ByStage)
	assert.Zero(t, data.ExpenseStats.TotalCount)

	metrics, err := service.GetMetrics("month")
	assert.NoError(t, err)
	assert.Zero(t, metrics.ConversionRate)
	assert.Zero(t, metrics.AverageQuote)

	rows, err := service.GetExportData("month")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportService_GetReportData(t *testing.T) {
	now := time.Now()
	enquiries := []models.Enquiry{
		reportEnquiry(1, models.StageCompleted, models.StatusConverted, 2000, now.AddDate(0, 0, -3)),
		reportEnquiry(2, models.StagePickup, models.StatusConverted, 1000, now.AddDate(0, 0, -2)),
		reportEnquiry(3, models.StageEnquiry, models.StatusNew, 0, now.AddDate(0, 0, -1)),
	}
	expenses := []models.Expense{
		{ID: 1, Title: "Glue", Amount: 300, Category: "Raw Materials", Date: now.AddDate(0, 0, -2)},
		{ID: 2, Title: "Salary - Anita", Amount: 18000, Category: models.CategoryStaffSalaries, Date: now.AddDate(0, 0, -1)},
	}

	mockEnquiryRepo := new(mocks.MockEnquiryRepository)
	mockExpenseRepo := new(mocks.MockExpenseRepository)
	mockEnquiryRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return(enquiries, nil)
	mockExpenseRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return(expenses, nil)

	service := NewReportService(mockEnquiryRepo, mockExpenseRepo, nil, time.Minute)
	data, err := service.GetReportData("month")

	assert.NoError(t, err)
	assert.Equal(t, 3, data.TotalEnquiries)
	// only converted enquiries count towards revenue
	assert.Equal(t, 3000.0, data.TotalRevenue)
	assert.Equal(t, 18300.0, data.TotalExpenses)
	assert.Equal(t, 3000.0-18300.0, data.NetIncome)
	assert.Equal(t, 1, data.ByStage[string(models.StageCompleted)])
	assert.Equal(t, 1, data.ByStage[string(models.StagePickup)])
	assert.Equal(t, 2, data.ByStatus[string(models.StatusConverted)])
	assert.Equal(t, 2, data.ExpenseStats.ByCategory[models.CategoryStaffSalaries].Count+data.ExpenseStats.ByCategory["Raw Materials"].Count)
}

// Deleting an enquiry removes it from the repository's result set, and a
// rebuilt report must not carry any of its contributions.
func TestReportService_DeletedEnquiryExcluded(t *testing.T) {
	now := time.Now()
	before := []models.Enquiry{
		reportEnquiry(1, models.StageCompleted, models.StatusConverted, 2000, now.AddDate(0, 0, -3)),
		reportEnquiry(2, models.StagePickup, models.StatusConverted, 1000, now.AddDate(0, 0, -2)),
	}
	after := before[:1]

	mockExpenseRepo := new(mocks.MockExpenseRepository)
	mockExpenseRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return([]models.Expense{}, nil)

	repoBefore := new(mocks.MockEnquiryRepository)
	repoBefore.On("GetByDateRange", mock.Anything, mock.Anything).Return(before, nil)
	dataBefore, err := NewReportService(repoBefore, mockExpenseRepo, nil, time.Minute).GetReportData("month")
	assert.NoError(t, err)
	assert.Equal(t, 2, dataBefore.TotalEnquiries)
	assert.Equal(t, 3000.0, dataBefore.TotalRevenue)

	repoAfter := new(mocks.MockEnquiryRepository)
	repoAfter.On("GetByDateRange", mock.Anything, mock.Anything).Return(after, nil)
	dataAfter, err := NewReportService(repoAfter, mockExpenseRepo, nil, time.Minute).GetReportData("month")
	assert.NoError(t, err)
	assert.Equal(t, 1, dataAfter.TotalEnquiries)
	assert.Equal(t, 2000.0, dataAfter.TotalRevenue)
	assert.Zero(t, dataAfter.ByStage[string(models.StagePickup)])
}

func TestReportService_GetMetrics(t *testing.T) {
	now := time.Now()
	enquiries := []models.Enquiry{
		reportEnquiry(1, models.StageCompleted, models.StatusConverted, 2000, now.AddDate(0, 0, -3)),
		reportEnquiry(2, models.StagePickup, models.StatusConverted, 1000, now.AddDate(0, 0, -2)),
		reportEnquiry(3, models.StageEnquiry, models.StatusNew, 0, now.AddDate(0, 0, -1)),
		reportEnquiry(4, models.StageEnquiry, models.StatusNew, 0, now.AddDate(0, 0, -1)),
	}

	mockEnquiryRepo := new(mocks.MockEnquiryRepository)
	mockEnquiryRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return(enquiries, nil)

	service := NewReportService(mockEnquiryRepo, new(mocks.MockExpenseRepository), nil, time.Minute)
	metrics, err := service.GetMetrics("month")

	assert.NoError(t, err)
	assert.Equal(t, 2, metrics.ConvertedCount)
	assert.Equal(t, 1, metrics.CompletedCount)
	assert.Equal(t, 50.0, metrics.ConversionRate)
	assert.Equal(t, 25.0, metrics.CompletionRate)
	assert.Equal(t, 1500.0, metrics.AverageQuote)
}

func TestReportService_UnknownPeriod(t *testing.T) {
	service := NewReportService(new(mocks.MockEnquiryRepository), new(mocks.MockExpenseRepository), nil, time.Minute)

	// a bad period is the caller's mistake, not a server fault
	var verr *workflow.ValidationError
	_, err := service.GetReportData("fortnight")
	assert.ErrorAs(t, err, &verr)

	_, err = service.GetMetrics("decade")
	assert.ErrorAs(t, err, &verr)
}

func TestReportService_CustomReportValidatesRange(t *testing.T) {
	service := NewReportService(new(mocks.MockEnquiryRepository), new(mocks.MockExpenseRepository), nil, time.Minute)

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.GetCustomReport(from, to)
	var verr *workflow.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReportService_RevenueChartBuckets(t *testing.T) {
	now := time.Now()
	enquiries := []models.Enquiry{
		reportEnquiry(1, models.StagePickup, models.StatusConverted, 500, now.AddDate(0, 0, -1)),
		reportEnquiry(2, models.StageEnquiry, models.StatusNew, 0, now.AddDate(0, 0, -1)),
	}
	expenses := []models.Expense{
		{ID: 1, Title: "Polish", Amount: 100, Category: "Raw Materials", Date: now.AddDate(0, 0, -1)},
	}

	mockEnquiryRepo := new(mocks.MockEnquiryRepository)
	mockExpenseRepo := new(mocks.MockExpenseRepository)
	mockEnquiryRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return(enquiries, nil)
	mockExpenseRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return(expenses, nil)

	service := NewReportService(mockEnquiryRepo, mockExpenseRepo, nil, time.Minute)
	points, err := service.GetRevenueChart("week")

	assert.NoError(t, err)
	assert.Len(t, points, 8) // rolling 7-day window, boundary days inclusive

	var revenue, expenseSum float64
	for _, p := range points {
		revenue += p.Revenue
		expenseSum += p.Expenses
	}
	// unconverted enquiries contribute nothing
	assert.Equal(t, 500.0, revenue)
	assert.Equal(t, 100.0, expenseSum)
}

func TestReportService_UsesCache(t *testing.T) {
	mockEnquiryRepo := new(mocks.MockEnquiryRepository)
	mockExpenseRepo := new(mocks.MockExpenseRepository)
	mockCache := new(mocks.MockReportCache)

	mockEnquiryRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return([]models.Enquiry{}, nil)
	mockExpenseRepo.On("GetByDateRange", mock.Anything, mock.Anything).Return([]models.Expense{}, nil)
	mockCache.On("GetReport", "data:month", mock.Anything).Return(assert.AnError)
	mockCache.On("SetReport", "data:month", mock.Anything, time.Minute).Return(nil)

	service := NewReportService(mockEnquiryRepo, mockExpenseRepo, mockCache, time.Minute)
	_, err := service.GetReportData("month")

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}
