package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessSettings is a single-row table holding the shop profile.
type BusinessSettings struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BusinessName string    `json:"business_name" gorm:"not null"`
	Address      string    `json:"address" gorm:"type:text"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	GSTNumber    string    `json:"gst_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StaffMember struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Role      string         `json:"role"`
	Phone     string         `json:"phone"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// SecuritySettings stores the bcrypt hash of the admin PIN, never the PIN.
type SecuritySettings struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PINHash   string    `json:"-" gorm:"not null"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
