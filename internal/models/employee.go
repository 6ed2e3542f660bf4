package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Role          string         `json:"role"`
	MonthlySalary float64        `json:"monthly_salary" gorm:"not null"`
	DateAdded     time.Time      `json:"date_added" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
