package repository

import (
	"cobbler_crm/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetBusiness() (*models.BusinessSettings, error)
	SaveBusiness(settings *models.BusinessSettings) error
	GetStaff() ([]models.StaffMember, error)
	GetStaffByID(id uint) (*models.StaffMember, error)
	CreateStaff(staff *models.StaffMember) error
	UpdateStaff(staff *models.StaffMember) error
	DeleteStaff(id uint) error
	GetSecurity() (*models.SecuritySettings, error)
	SaveSecurity(settings *models.SecuritySettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetBusiness() (*models.BusinessSettings, error) {
	var settings models.BusinessSettings
	err := r.db.First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveBusiness(settings *models.BusinessSettings) error {
	// single-row table: overwrite the existing row if one exists
	var existing models.BusinessSettings
	err := r.db.First(&existing).Error
	if err == nil {
		settings.ID = existing.ID
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Save(settings).Error
}

func (r *settingsRepository) GetStaff() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := r.db.Find(&staff).Error
	return staff, err
}

func (r *settingsRepository) GetStaffByID(id uint) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.db.First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *settingsRepository) CreateStaff(staff *models.StaffMember) error {
	return r.db.Create(staff).Error
}

func (r *settingsRepository) UpdateStaff(staff *models.StaffMember) error {
	return r.db.Save(staff).Error
}

func (r *settingsRepository) DeleteStaff(id uint) error {
	return r.db.Delete(&models.StaffMember{}, id).Error
}

func (r *settingsRepository) GetSecurity() (*models.SecuritySettings, error) {
	var settings models.SecuritySettings
	err := r.db.First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveSecurity(settings *models.SecuritySettings) error {
	var existing models.SecuritySettings
	err := r.db.First(&existing).Error
	if err == nil {
		settings.ID = existing.ID
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Save(settings).Error
}
