package database

import (
	"fmt"
	"log"

	"cobbler_crm/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Enquiry{},
		&models.EnquiryProduct{},
		&models.PickupDetails{},
		&models.ServiceDetails{},
		&models.DeliveryDetails{},
		&models.StagePhoto{},
		&models.Expense{},
		&models.Employee{},
		&models.BusinessSettings{},
		&models.StaffMember{},
		&models.SecuritySettings{},
	)
}
