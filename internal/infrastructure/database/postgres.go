package database

import (
	"fmt"
	"log"

	"github.com/greenpalms/resort-api/internal/config"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Guest{},
		&entity.Service{},
		&entity.MenuItem{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.KitchenOrder{},
		&entity.KitchenOrderItem{},
		&entity.ResortSettings{},
		&entity.IdempotencyKey{},
		&entity.DocumentSequence{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the settings row and an initial admin user when
// the database is empty
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	db.Model(&entity.ResortSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := entity.ResortSettings{
			ResortName: viper.GetString("RESORT_NAME"),
		}
		if settings.ResortName == "" {
			settings.ResortName = "Resort"
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to seed resort settings: %v", err)
		}
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Println("Default data seeding completed")
		return nil
	}

	var existing entity.User
	if err := db.Where("username = ?", adminUsername).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", adminUsername)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return nil
	}

	adminName := viper.GetString("ADMIN_NAME")
	if adminName == "" {
		adminName = "Administrator"
	}

	admin := entity.User{
		Username: adminUsername,
		Name:     adminName,
		Email:    viper.GetString("ADMIN_EMAIL"),
		Password: string(hashed),
		Role:     enum.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", adminUsername)
	}

	log.Println("Default data seeding completed")
	return nil
}
