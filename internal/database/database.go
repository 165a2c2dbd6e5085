package database

import (
	"hospital-gin/internal/config"
	"hospital-gin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection. TranslateError is on so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// scheduling layer relies on for slot-conflict detection.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Treatment{},
		&models.DoctorAvailability{},
	)
}
