package services

import (
	"testing"
	"time"

	"cobbler_crm/internal/mocks"
	"cobbler_crm/internal/models"
	"cobbler_crm/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newServiceEnquiry(stage models.Stage, status models.EnquiryStatus) *models.Enquiry {
	return &models.Enquiry{
		ID:           1,
		CustomerName: "Ravi Kumar",
		Phone:        "9876543210",
		InquiryType:  string(models.InquiryWhatsApp),
		Status:       string(status),
		CurrentStage: string(stage),
		Products: []models.EnquiryProduct{
			{ProductType: string(models.ProductShoe), Quantity: 1},
		},
		Date: time.Now(),
	}
}

func TestEnquiryService_CreateEnquiry(t *testing.T) {
	t.Run("valid enquiry persisted with defaults", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		mockCache := new(mocks.MockReportCache)
		mockRepo.On("Create", mock.AnythingOfType("*models.Enquiry")).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEnquiryService(mockRepo, mockCache, nil)
		enquiry := newServiceEnquiry("", "")
		err := service.CreateEnquiry(enquiry)

		assert.NoError(t, err)
		assert.Equal(t, string(models.StatusNew), enquiry.Status)
		assert.Equal(t, string(models.StageEnquiry), enquiry.CurrentStage)
		assert.False(t, enquiry.Date.IsZero())
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("invalid enquiry never reaches repository", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		service := NewEnquiryService(mockRepo, nil, nil)

		enquiry := newServiceEnquiry("", "")
		enquiry.Phone = "12345"
		err := service.CreateEnquiry(enquiry)

		assert.Error(t, err)
		var verr *workflow.ValidationError
		assert.ErrorAs(t, err, &verr)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestEnquiryService_ConvertEnquiry(t *testing.T) {
	pickupDate := time.Now().AddDate(0, 0, 5)
	deliveryDate := pickupDate.AddDate(0, 0, 20)

	t.Run("valid conversion persists the updated record", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		mockCache := new(mocks.MockReportCache)
		stored := newServiceEnquiry(models.StageEnquiry, models.StatusNew)
		mockRepo.On("GetByID", uint(1)).Return(stored, nil)
		mockRepo.On("Update", mock.AnythingOfType("*models.Enquiry")).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEnquiryService(mockRepo, mockCache, nil)
		enquiry, err := service.ConvertEnquiry(1, 1500, pickupDate, deliveryDate)

		assert.NoError(t, err)
		assert.Equal(t, string(models.StatusConverted), enquiry.Status)
		assert.Equal(t, 1500.0, enquiry.QuotedAmount)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("validation failure leaves the record unwritten", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		stored := newServiceEnquiry(models.StageEnquiry, models.StatusNew)
		mockRepo.On("GetByID", uint(1)).Return(stored, nil)

		service := NewEnquiryService(mockRepo, nil, nil)
		_, err := service.ConvertEnquiry(1, 0.5, pickupDate, deliveryDate)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("missing enquiry surfaces repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		mockRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewEnquiryService(mockRepo, nil, nil)
		_, err := service.ConvertEnquiry(99, 1500, pickupDate, deliveryDate)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestEnquiryService_SchedulePickup(t *testing.T) {
	mockRepo := new(mocks.MockEnquiryRepository)
	stored := newServiceEnquiry(models.StageEnquiry, models.StatusConverted)
	mockRepo.On("GetByID", uint(1)).Return(stored, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Enquiry")).Return(nil)

	service := NewEnquiryService(mockRepo, nil, nil)
	enquiry, err := service.SchedulePickup(1)

	assert.NoError(t, err)
	assert.Equal(t, string(models.StagePickup), enquiry.CurrentStage)
	assert.NotNil(t, enquiry.PickupDetails)
	mockRepo.AssertExpectations(t)
}

func TestEnquiryService_UpdateEnquiry_PreservesWorkflowFields(t *testing.T) {
	mockRepo := new(mocks.MockEnquiryRepository)
	stored := newServiceEnquiry(models.StageService, models.StatusConverted)
	stored.QuotedAmount = 2000
	mockRepo.On("GetByID", uint(1)).Return(stored, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Enquiry")).Return(nil)

	service := NewEnquiryService(mockRepo, nil, nil)

	edit := newServiceEnquiry(models.StageEnquiry, models.StatusNew)
	edit.CustomerName = "Ravi K"
	updated, err := service.UpdateEnquiry(edit)

	assert.NoError(t, err)
	assert.Equal(t, "Ravi K", updated.CustomerName)
	// plain edits cannot move the workflow or rewrite the quote
	assert.Equal(t, string(models.StageService), updated.CurrentStage)
	assert.Equal(t, string(models.StatusConverted), updated.Status)
	assert.Equal(t, 2000.0, updated.QuotedAmount)
}

func TestEnquiryService_DeleteEnquiry(t *testing.T) {
	t.Run("existing enquiry deleted and cache invalidated", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		mockCache := new(mocks.MockReportCache)
		stored := newServiceEnquiry(models.StageEnquiry, models.StatusNew)
		mockRepo.On("GetByID", uint(1)).Return(stored, nil)
		mockRepo.On("Delete", uint(1)).Return(nil)
		mockCache.On("InvalidateReports").Return(nil)

		service := NewEnquiryService(mockRepo, mockCache, nil)
		err := service.DeleteEnquiry(1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("missing enquiry is not deleted", func(t *testing.T) {
		mockRepo := new(mocks.MockEnquiryRepository)
		mockRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewEnquiryService(mockRepo, nil, nil)
		err := service.DeleteEnquiry(99)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
