package migrations

import (
	"log"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/services"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema, applies the one-off data fixes and
// seeds default settings. Destructive; only scripts/init-db.go calls it.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
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
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
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
	if err != nil {
		return err
	}

	if err := WidenProductTypes(db); err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// WidenProductTypes replaces the old three-value product type constraint
// with the current five-value set. Older databases carried a check
// constraint that predates Belt and All-type-furniture.
func WidenProductTypes(db *gorm.DB) error {
	log.Println("Widening enquiry_products product_type constraint...")

	err := db.Exec(`ALTER TABLE enquiry_products DROP CONSTRAINT IF EXISTS chk_enquiry_products_product_type`).Error
	if err != nil {
		return err
	}
	return db.Exec(`ALTER TABLE enquiry_products ADD CONSTRAINT chk_enquiry_products_product_type
		CHECK (product_type IN ('Bag', 'Shoe', 'Wallet', 'Belt', 'All-type-furniture'))`).Error
}

// createDefaultData seeds the business profile and the admin PIN.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	settingsRepo := repository.NewSettingsRepository(db)
	settingsService := services.NewSettingsService(settingsRepo)

	existing, err := settingsService.GetBusinessSettings()
	if err == nil && existing.ID != 0 {
		log.Println("Business settings already exist")
		return nil
	}

	business := &models.BusinessSettings{
		BusinessName: "Cobbler Repair Works",
		Address:      "Shop 12, Market Road",
		Phone:        "9876543210",
	}
	if err := settingsService.SaveBusinessSettings(business); err != nil {
		log.Printf("Warning: Failed to create business settings: %v", err)
	}

	if err := settingsService.SetPIN("1234", "system"); err != nil {
		log.Printf("Warning: Failed to set default PIN: %v", err)
	} else {
		log.Println("Default admin PIN set to 1234, change it after first login")
	}

	log.Println("Default data created successfully!")
	return nil
}
