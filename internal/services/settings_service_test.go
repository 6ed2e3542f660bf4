package services

import (
	"testing"

	"cobbler_crm/internal/mocks"
	"cobbler_crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestSettingsService_SetPIN(t *testing.T) {
	t.Run("stores a hash, never the PIN", func(t *testing.T) {
		mockRepo := new(mocks.MockSettingsRepository)
		var saved *models.SecuritySettings
		mockRepo.On("SaveSecurity", mock.AnythingOfType("*models.SecuritySettings")).Return(nil).Run(func(args mock.Arguments) {
			saved = args.Get(0).(*models.SecuritySettings)
		})

		service := NewSettingsService(mockRepo)
		err := service.SetPIN("4729", "admin")

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.NotEqual(t, "4729", saved.PINHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PINHash), []byte("4729")))
	})

	t.Run("short PIN rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockSettingsRepository)
		service := NewSettingsService(mockRepo)

		err := service.SetPIN("12", "admin")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "SaveSecurity", mock.Anything)
	})
}

func TestSettingsService_VerifyPIN(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4729"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("correct PIN verifies", func(t *testing.T) {
		mockRepo := new(mocks.MockSettingsRepository)
		mockRepo.On("GetSecurity").Return(&models.SecuritySettings{PINHash: string(hash)}, nil)

		service := NewSettingsService(mockRepo)
		ok, err := service.VerifyPIN("4729")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong PIN fails quietly", func(t *testing.T) {
		mockRepo := new(mocks.MockSettingsRepository)
		mockRepo.On("GetSecurity").Return(&models.SecuritySettings{PINHash: string(hash)}, nil)

		service := NewSettingsService(mockRepo)
		ok, err := service.VerifyPIN("0000")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no PIN configured", func(t *testing.T) {
		mockRepo := new(mocks.MockSettingsRepository)
		mockRepo.On("GetSecurity").Return(nil, gorm.ErrRecordNotFound)

		service := NewSettingsService(mockRepo)
		ok, err := service.VerifyPIN("4729")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingsService_SaveBusinessSettings(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepository)
	service := NewSettingsService(mockRepo)

	err := service.SaveBusinessSettings(&models.BusinessSettings{})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "SaveBusiness", mock.Anything)

	mockRepo.On("SaveBusiness", mock.AnythingOfType("*models.BusinessSettings")).Return(nil)
	err = service.SaveBusinessSettings(&models.BusinessSettings{BusinessName: "Cobbler Repair Works"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
