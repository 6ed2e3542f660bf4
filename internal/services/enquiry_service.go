package services

import (
	"fmt"
	"log"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/validation"
	"cobbler_crm/internal/workflow"
	"cobbler_crm/pkg/whatsapp"
)

// ReportCache is the slice of the redis client the services need. Reports
// are invalidated on every enquiry/expense mutation.
type ReportCache interface {
	GetReport(key string, dest interface{}) error
	SetReport(key string, value interface{}, ttl time.Duration) error
	InvalidateReports() error
}

// MessageSender sends customer-facing status messages. Optional; a nil
// sender disables notifications.
type MessageSender interface {
	SendMessage(phone, message string) (*whatsapp.SendMessageResponse, error)
}

type EnquiryService interface {
	CreateEnquiry(enquiry *models.Enquiry) error
	GetEnquiryByID(id uint) (*models.Enquiry, error)
	GetAllEnquiries() ([]models.Enquiry, error)
	GetEnquiriesByStage(stage string) ([]models.Enquiry, error)
	UpdateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error)
	DeleteEnquiry(id uint) error

	ConvertEnquiry(id uint, quotedAmount float64, pickupDate, deliveryDate time.Time) (*models.Enquiry, error)
	SchedulePickup(id uint) (*models.Enquiry, error)
	AssignPickup(id uint, assignee string) (*models.Enquiry, error)
	MarkCollected(id uint, proofPhoto string) (*models.Enquiry, error)
	MarkReceived(id uint, itemPhotos []string, notes string, estimatedCost float64) (*models.Enquiry, error)
	CompleteService(id uint, notes string) (*models.Enquiry, error)
	ScheduleDelivery(id uint, method string, scheduledTime time.Time) (*models.Enquiry, error)
	MarkOutForDelivery(id uint, assignedTo string) (*models.Enquiry, error)
	CompleteDelivery(id uint, proofPhoto, signature, notes string) (*models.Enquiry, error)
}

type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	cache       ReportCache
	notifier    MessageSender
}

func NewEnquiryService(enquiryRepo repository.EnquiryRepository, cache ReportCache, notifier MessageSender) EnquiryService {
	return &enquiryService{enquiryRepo: enquiryRepo, cache: cache, notifier: notifier}
}

func (s *enquiryService) CreateEnquiry(enquiry *models.Enquiry) error {
	if err := validation.ValidateEnquiry(enquiry); err != nil {
		return err
	}

	if enquiry.Date.IsZero() {
		enquiry.Date = time.Now()
	}
	enquiry.Status = string(models.StatusNew)
	enquiry.CurrentStage = string(models.StageEnquiry)

	if err := s.enquiryRepo.Create(enquiry); err != nil {
		return err
	}
	s.invalidateReports()
	return nil
}

func (s *enquiryService) GetEnquiryByID(id uint) (*models.Enquiry, error) {
	return s.enquiryRepo.GetByID(id)
}

func (s *enquiryService) GetAllEnquiries() ([]models.Enquiry, error) {
	return s.enquiryRepo.GetAll()
}

func (s *enquiryService) GetEnquiriesByStage(stage string) ([]models.Enquiry, error) {
	return s.enquiryRepo.GetByStage(stage)
}

// UpdateEnquiry edits customer-entered fields only. Stage, status and the
// quote are owned by the transition operations and are not writable here.
func (s *enquiryService) UpdateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error) {
	existing, err := s.enquiryRepo.GetByID(enquiry.ID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateEnquiry(enquiry); err != nil {
		return nil, err
	}

	existing.CustomerName = enquiry.CustomerName
	existing.Phone = enquiry.Phone
	existing.Address = enquiry.Address
	existing.InquiryType = enquiry.InquiryType
	existing.Products = enquiry.Products
	if !enquiry.Date.IsZero() {
		existing.Date = enquiry.Date
	}

	if err := s.enquiryRepo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidateReports()
	return existing, nil
}

func (s *enquiryService) DeleteEnquiry(id uint) error {
	if _, err := s.enquiryRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.enquiryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateReports()
	return nil
}

// applyTransition loads the enquiry, runs a workflow operation against it
// and persists the result. The operation either applies fully or the
// stored record is untouched.
func (s *enquiryService) applyTransition(id uint, op func(*models.Enquiry) error) (*models.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := op(enquiry); err != nil {
		return nil, err
	}
	if err := s.enquiryRepo.Update(enquiry); err != nil {
		return nil, err
	}
	s.invalidateReports()
	return enquiry, nil
}

func (s *enquiryService) ConvertEnquiry(id uint, quotedAmount float64, pickupDate, deliveryDate time.Time) (*models.Enquiry, error) {
	return s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.ConvertEnquiry(e, quotedAmount, pickupDate, deliveryDate)
	})
}

func (s *enquiryService) SchedulePickup(id uint) (*models.Enquiry, error) {
	enquiry, err := s.applyTransition(id, workflow.SchedulePickup)
	if err != nil {
		return nil, err
	}
	s.notify(enquiry, fmt.Sprintf("Hi %s, your pickup has been scheduled. We will let you know once a runner is assigned.", enquiry.CustomerName))
	return enquiry, nil
}

func (s *enquiryService) AssignPickup(id uint, assignee string) (*models.Enquiry, error) {
	return s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.AssignPickup(e, assignee)
	})
}

func (s *enquiryService) MarkCollected(id uint, proofPhoto string) (*models.Enquiry, error) {
	return s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.MarkCollected(e, proofPhoto)
	})
}

func (s *enquiryService) MarkReceived(id uint, itemPhotos []string, notes string, estimatedCost float64) (*models.Enquiry, error) {
	return s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.MarkReceived(e, itemPhotos, notes, estimatedCost)
	})
}

func (s *enquiryService) CompleteService(id uint, notes string) (*models.Enquiry, error) {
	return s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.CompleteService(e, notes)
	})
}

func (s *enquiryService) ScheduleDelivery(id uint, method string, scheduledTime time.Time) (*models.Enquiry, error) {
	enquiry, err := s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.ScheduleDelivery(e, models.DeliveryMethod(method), scheduledTime)
	})
	if err != nil {
		return nil, err
	}
	s.notify(enquiry, fmt.Sprintf("Hi %s, your items are ready. Delivery is scheduled for %s.", enquiry.CustomerName, scheduledTime.Format("02 Jan 2006 15:04")))
	return enquiry, nil
}

func (s *enquiryService) MarkOutForDelivery(id uint, assignedTo string) (*models.Enquiry, error) {
	enquiry, err := s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.MarkOutForDelivery(e, assignedTo)
	})
	if err != nil {
		return nil, err
	}
	s.notify(enquiry, fmt.Sprintf("Hi %s, your items are out for delivery.", enquiry.CustomerName))
	return enquiry, nil
}

func (s *enquiryService) CompleteDelivery(id uint, proofPhoto, signature, notes string) (*models.Enquiry, error) {
	enquiry, err := s.applyTransition(id, func(e *models.Enquiry) error {
		return workflow.CompleteDelivery(e, proofPhoto, signature, notes)
	})
	if err != nil {
		return nil, err
	}
	s.notify(enquiry, fmt.Sprintf("Hi %s, your order has been delivered. Thank you for choosing us!", enquiry.CustomerName))
	return enquiry, nil
}

func (s *enquiryService) invalidateReports() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReports(); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}
}

// notify sends a WhatsApp status update. Failures are logged, never
// propagated; a gateway outage must not block a transition.
func (s *enquiryService) notify(enquiry *models.Enquiry, message string) {
	if s.notifier == nil || enquiry.Phone == "" {
		return
	}
	if _, err := s.notifier.SendMessage(enquiry.Phone, message); err != nil {
		log.Printf("Warning: failed to send WhatsApp notification for enquiry %d: %v", enquiry.ID, err)
	}
}
