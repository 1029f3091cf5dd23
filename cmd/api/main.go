package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/config"
	"github.com/greenpalms/resort-api/internal/infrastructure/database"
	"github.com/greenpalms/resort-api/internal/infrastructure/repository"
	"github.com/greenpalms/resort-api/internal/presentation/http/handler"
	"github.com/greenpalms/resort-api/internal/presentation/http/routes"
	"github.com/greenpalms/resort-api/pkg/email"
	"github.com/greenpalms/resort-api/pkg/oauth"
	"github.com/greenpalms/resort-api/pkg/utils"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	orderRepo := repository.NewKitchenOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	guestService := service.NewGuestService(guestRepo)
	catalogService := service.NewCatalogService(serviceRepo, menuItemRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, serviceRepo, menuItemRepo, guestRepo, settingsRepo, emailService)
	orderService := service.NewKitchenOrderService(orderRepo, menuItemRepo, guestRepo, invoiceService)
	aggregateService := service.NewAggregateService(invoiceRepo, settingsRepo, emailService)
	reportService := service.NewReportService(reportRepo, invoiceRepo, orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Expired idempotency keys are purged hourly
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		deleted, err := idempotencyRepo.DeleteExpired(context.Background())
		if err != nil {
			log.Printf("Warning: Failed to purge idempotency keys: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("Purged %d expired idempotency keys", deleted)
		}
	}); err != nil {
		log.Printf("Warning: Failed to schedule idempotency cleanup: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService, googleOAuthService),
		User:         handler.NewUserHandler(userService),
		Guest:        handler.NewGuestHandler(guestService),
		Catalog:      handler.NewCatalogHandler(catalogService),
		Invoice:      handler.NewInvoiceHandler(invoiceService, aggregateService),
		KitchenOrder: handler.NewKitchenOrderHandler(orderService),
		Report:       handler.NewReportHandler(reportService),
		Settings:     handler.NewSettingsHandler(settingsService, &cfg.Storage),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
