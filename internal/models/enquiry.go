package models

import (
	"time"

	"gorm.io/gorm"
)

type Enquiry struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	CustomerName    string           `json:"customer_name" gorm:"not null"`
	Phone           string           `json:"phone" gorm:"not null"`
	Address         string           `json:"address" gorm:"type:text"`
	InquiryType     string           `json:"inquiry_type" gorm:"not null"` // instagram, facebook, whatsapp
	Status          string           `json:"status" gorm:"default:'new'"`  // new, contacted, converted, closed
	CurrentStage    string           `json:"current_stage" gorm:"default:'enquiry'"`
	QuotedAmount    float64          `json:"quoted_amount"`
	PickupDate      *time.Time       `json:"pickup_date"`
	DeliveryDate    *time.Time       `json:"delivery_date"`
	ContactedAt     *time.Time       `json:"contacted_at"`
	Date            time.Time        `json:"date" gorm:"not null"`
	Products        []EnquiryProduct `json:"products" gorm:"constraint:OnDelete:CASCADE"`
	PickupDetails   *PickupDetails   `json:"pickup_details,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ServiceDetails  *ServiceDetails  `json:"service_details,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	DeliveryDetails *DeliveryDetails `json:"delivery_details,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
}

type EnquiryProduct struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	EnquiryID   uint           `json:"enquiry_id" gorm:"not null;index"`
	ProductType string         `json:"product_type" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Stage is the physical workflow position of an enquiry. It only moves
// forward: enquiry -> pickup -> service -> delivery -> completed.
type Stage string

const (
	StageEnquiry   Stage = "enquiry"
	StagePickup    Stage = "pickup"
	StageService   Stage = "service"
	StageDelivery  Stage = "delivery"
	StageCompleted Stage = "completed"
)

// EnquiryStatus is the customer-relationship state, orthogonal to Stage.
type EnquiryStatus string

const (
	StatusNew       EnquiryStatus = "new"
	StatusContacted EnquiryStatus = "contacted"
	StatusConverted EnquiryStatus = "converted"
	StatusClosed    EnquiryStatus = "closed"
)

type ProductType string

const (
	ProductBag       ProductType = "Bag"
	ProductShoe      ProductType = "Shoe"
	ProductWallet    ProductType = "Wallet"
	ProductBelt      ProductType = "Belt"
	ProductFurniture ProductType = "All-type-furniture"
)

type InquiryType string

const (
	InquiryInstagram InquiryType = "instagram"
	InquiryFacebook  InquiryType = "facebook"
	InquiryWhatsApp  InquiryType = "whatsapp"
)
