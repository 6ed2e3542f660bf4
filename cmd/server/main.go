package main

import (
	"log"
	"time"

	"cobbler_crm/internal/config"
	"cobbler_crm/internal/database"
	"cobbler_crm/internal/handlers"
	"cobbler_crm/internal/redis"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/services"
	"cobbler_crm/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// WhatsApp notifications are optional; without a gateway URL the
	// services simply skip them.
	var notifier services.MessageSender
	if cfg.WhatsAppAPIURL != "" {
		notifier = whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword)
	}

	// Initialize repositories
	enquiryRepo := repository.NewEnquiryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	enquiryService := services.NewEnquiryService(enquiryRepo, redisClient, notifier)
	expenseService := services.NewExpenseService(expenseRepo, redisClient)
	employeeService := services.NewEmployeeService(employeeRepo, expenseRepo, redisClient)
	reportService := services.NewReportService(enquiryRepo, expenseRepo, redisClient, time.Duration(cfg.ReportCacheTTL)*time.Second)
	settingsService := services.NewSettingsService(settingsRepo)

	// Initialize handlers
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, cfg.UploadDir)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	reportHandler := handlers.NewReportHandler(reportService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.TokenAuth(cfg.APIToken))

	enquiries := router.Group("/enquiries")
	{
		enquiries.POST("", enquiryHandler.Create)
		enquiries.GET("", enquiryHandler.List)
		enquiries.GET("/:id", enquiryHandler.Get)
		enquiries.PUT("/:id", enquiryHandler.Update)
		enquiries.DELETE("/:id", enquiryHandler.Delete)

		enquiries.POST("/:id/convert", enquiryHandler.Convert)
		enquiries.POST("/:id/schedule-pickup", enquiryHandler.SchedulePickup)
		enquiries.POST("/:id/assign-pickup", enquiryHandler.AssignPickup)
		enquiries.POST("/:id/mark-collected", enquiryHandler.MarkCollected)
		enquiries.POST("/:id/mark-received", enquiryHandler.MarkReceived)
		enquiries.POST("/:id/complete-service", enquiryHandler.CompleteService)
		enquiries.POST("/:id/schedule-delivery", enquiryHandler.ScheduleDelivery)
		enquiries.POST("/:id/out-for-delivery", enquiryHandler.MarkOutForDelivery)
		enquiries.POST("/:id/complete-delivery", enquiryHandler.CompleteDelivery)
	}

	expense := router.Group("/expense")
	{
		expense.GET("", expenseHandler.List)
		expense.POST("", expenseHandler.Create)
		expense.GET("/stats", expenseHandler.Stats)
		expense.PUT("/:id", expenseHandler.Update)
		expense.DELETE("/:id", expenseHandler.Delete)

		expense.GET("/employees", employeeHandler.List)
		expense.POST("/employees", employeeHandler.Create)
		expense.PUT("/employees/:id", employeeHandler.Update)
		expense.DELETE("/employees/:id", employeeHandler.Delete)
	}

	reports := router.Group("/reports")
	{
		reports.GET("/data", reportHandler.Data)
		reports.GET("/metrics", reportHandler.Metrics)
		reports.GET("/revenue-chart", reportHandler.RevenueChart)
		reports.GET("/export-data", reportHandler.ExportData)
		reports.GET("/custom", reportHandler.Custom)
	}

	settings := router.Group("/settings")
	{
		settings.GET("/business", settingsHandler.GetBusiness)
		settings.POST("/business", settingsHandler.SaveBusiness)
		settings.GET("/staff", settingsHandler.ListStaff)
		settings.POST("/staff", settingsHandler.CreateStaff)
		settings.PUT("/staff/:id", settingsHandler.UpdateStaff)
		settings.DELETE("/staff/:id", settingsHandler.DeleteStaff)
		settings.GET("/security", settingsHandler.GetSecurity)
		settings.POST("/security", settingsHandler.SaveSecurity)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
