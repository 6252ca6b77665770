package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/config"
	"github.com/arteldev/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.AdditionalOption{},
		&models.ClientProfile{},
		&models.User{},
		&models.UserClient{},
		&models.Master{},
		&models.MasterSchedule{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentForm{},
		&models.Payment{},
		&models.GiftCertificate{},
		&models.AuditLog{},
	)
}

// Seed inserts the reference option rows and a default admin account
// when the tables are empty.
func Seed(db *gorm.DB, adminPassword string) error {
	var optCount int64
	if err := db.Model(&models.AdditionalOption{}).Count(&optCount).Error; err != nil {
		return err
	}
	if optCount == 0 {
		options := []models.AdditionalOption{
			{Name: "Allergies"},
			{Name: "Special requests"},
			{Name: "Consultation required"},
		}
		if err := db.Create(&options).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
