package repository

import (
	"time"

	"cobbler_crm/internal/models"

	"gorm.io/gorm"
)

type EnquiryRepository interface {
	Create(enquiry *models.Enquiry) error
	GetByID(id uint) (*models.Enquiry, error)
	GetAll() ([]models.Enquiry, error)
	GetByStage(stage string) ([]models.Enquiry, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Enquiry, error)
	Update(enquiry *models.Enquiry) error
	Delete(id uint) error
}

type enquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(enquiry *models.Enquiry) error {
	return r.db.Create(enquiry).Error
}

func (r *enquiryRepository) GetByID(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.
		Preload("Products").
		Preload("PickupDetails").
		Preload("ServiceDetails").
		Preload("ServiceDetails.Photos").
		Preload("DeliveryDetails").
		First(&enquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *enquiryRepository) GetAll() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Preload("Products").Order("date DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepository) GetByStage(stage string) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.
		Preload("Products").
		Preload("PickupDetails").
		Preload("DeliveryDetails").
		Where("current_stage = ?", stage).
		Order("date DESC").
		Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Preload("Products").Where("date BETWEEN ? AND ?", startDate, endDate).Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepository) Update(enquiry *models.Enquiry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// product edits arrive as a full replacement list
		if len(enquiry.Products) > 0 {
			err := tx.Where("enquiry_id = ?", enquiry.ID).Delete(&models.EnquiryProduct{}).Error
			if err != nil {
				return err
			}
			for i := range enquiry.Products {
				enquiry.Products[i].ID = 0
				enquiry.Products[i].EnquiryID = enquiry.ID
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(enquiry).Error
	})
}

func (r *enquiryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Enquiry{}, id).Error
}
