package services

import (
	"errors"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/workflow"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SecurityStatus is what GET /settings/security exposes; the hash itself
// never leaves the service.
type SecurityStatus struct {
	PINSet    bool   `json:"pin_set"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

type SettingsService interface {
	GetBusinessSettings() (*models.BusinessSettings, error)
	SaveBusinessSettings(settings *models.BusinessSettings) error
	GetStaff() ([]models.StaffMember, error)
	CreateStaff(staff *models.StaffMember) error
	UpdateStaff(staff *models.StaffMember) error
	DeleteStaff(id uint) error
	GetSecurityStatus() (*SecurityStatus, error)
	SetPIN(pin, updatedBy string) error
	VerifyPIN(pin string) (bool, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetBusinessSettings() (*models.BusinessSettings, error) {
	settings, err := s.settingsRepo.GetBusiness()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.BusinessSettings{}, nil
	}
	return settings, err
}

func (s *settingsService) SaveBusinessSettings(settings *models.BusinessSettings) error {
	if settings.BusinessName == "" {
		verr := &workflow.ValidationError{}
		verr.Add("business_name", "business name is required")
		return verr
	}
	return s.settingsRepo.SaveBusiness(settings)
}

func (s *settingsService) GetStaff() ([]models.StaffMember, error) {
	return s.settingsRepo.GetStaff()
}

func (s *settingsService) CreateStaff(staff *models.StaffMember) error {
	if staff.Name == "" {
		verr := &workflow.ValidationError{}
		verr.Add("name", "name is required")
		return verr
	}
	staff.IsActive = true
	return s.settingsRepo.CreateStaff(staff)
}

func (s *settingsService) UpdateStaff(staff *models.StaffMember) error {
	if _, err := s.settingsRepo.GetStaffByID(staff.ID); err != nil {
		return err
	}
	return s.settingsRepo.UpdateStaff(staff)
}

func (s *settingsService) DeleteStaff(id uint) error {
	if _, err := s.settingsRepo.GetStaffByID(id); err != nil {
		return err
	}
	return s.settingsRepo.DeleteStaff(id)
}

func (s *settingsService) GetSecurityStatus() (*SecurityStatus, error) {
	settings, err := s.settingsRepo.GetSecurity()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &SecurityStatus{PINSet: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &SecurityStatus{PINSet: settings.PINHash != "", UpdatedBy: settings.UpdatedBy}, nil
}

func (s *settingsService) SetPIN(pin, updatedBy string) error {
	if len(pin) < 4 {
		verr := &workflow.ValidationError{}
		verr.Add("pin", "PIN must be at least 4 characters")
		return verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.settingsRepo.SaveSecurity(&models.SecuritySettings{
		PINHash:   string(hash),
		UpdatedBy: updatedBy,
	})
}

func (s *settingsService) VerifyPIN(pin string) (bool, error) {
	settings, err := s.settingsRepo.GetSecurity()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(settings.PINHash), []byte(pin))
	if err != nil {
		return false, nil
	}
	return true, nil
}
