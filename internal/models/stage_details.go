package models

import (
	"time"

	"gorm.io/gorm"
)

// PickupDetails is created when an enquiry enters the pickup stage. Its
// status gates the stage's exit: scheduled -> assigned -> collected -> received.
type PickupDetails struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	EnquiryID   uint           `json:"enquiry_id" gorm:"not null;uniqueIndex"`
	Status      string         `json:"status" gorm:"default:'scheduled'"`
	AssignedTo  string         `json:"assigned_to"`
	ProofPhoto  string         `json:"proof_photo"`
	Notes       string         `json:"notes" gorm:"type:text"`
	CollectedAt *time.Time     `json:"collected_at"`
	ReceivedAt  *time.Time     `json:"received_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ServiceDetails struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	EnquiryID     uint           `json:"enquiry_id" gorm:"not null;uniqueIndex"`
	Status        string         `json:"status" gorm:"default:'in-progress'"`
	EstimatedCost float64        `json:"estimated_cost"`
	Notes         string         `json:"notes" gorm:"type:text"`
	StartedAt     time.Time      `json:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
	Photos        []StagePhoto   `json:"photos" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type DeliveryDetails struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	EnquiryID     uint           `json:"enquiry_id" gorm:"not null;uniqueIndex"`
	Status        string         `json:"status" gorm:"default:'ready'"`
	Method        string         `json:"method"` // customer-pickup, home-delivery
	ScheduledTime *time.Time     `json:"scheduled_time"`
	AssignedTo    string         `json:"assigned_to"`
	ProofPhoto    string         `json:"proof_photo"`
	Signature     string         `json:"signature"`
	Notes         string         `json:"notes" gorm:"type:text"`
	DeliveredAt   *time.Time     `json:"delivered_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// StagePhoto holds the per-item photos recorded when items are received
// into service.
type StagePhoto struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ServiceID uint           `json:"service_id" gorm:"not null;index"`
	URL       string         `json:"url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type PickupStatus string

const (
	PickupScheduled PickupStatus = "scheduled"
	PickupAssigned  PickupStatus = "assigned"
	PickupCollected PickupStatus = "collected"
	PickupReceived  PickupStatus = "received"
)

type DeliveryStatus string

const (
	DeliveryReady          DeliveryStatus = "ready"
	DeliveryScheduled      DeliveryStatus = "scheduled"
	DeliveryOutForDelivery DeliveryStatus = "out-for-delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
)

type DeliveryMethod string

const (
	MethodCustomerPickup DeliveryMethod = "customer-pickup"
	MethodHomeDelivery   DeliveryMethod = "home-delivery"
)
