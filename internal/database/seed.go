package database

import (
	"errors"

	"hospital-gin/internal/models"
	"hospital-gin/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var defaultDepartments = []models.Department{
	{Name: "Cardiology", Description: "Heart and cardiovascular system"},
	{Name: "Neurology", Description: "Brain and nervous system"},
	{Name: "Orthopedics", Description: "Bones, joints, and muscles"},
	{Name: "Pediatrics", Description: "Children health"},
	{Name: "Dermatology", Description: "Skin, hair, and nails"},
	{Name: "General Medicine", Description: "General health consultation"},
}

const (
	defaultAdminEmail    = "admin@hospital.com"
	defaultAdminPassword = "admin123"
)

// Seed inserts the reference departments and the bootstrap admin account when
// they are missing. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&defaultDepartments).Error; err != nil {
			return err
		}
		log.Info().Msg("default departments created")
	}

	var admin models.User
	err := db.Where("email = ?", defaultAdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin = models.User{
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", defaultAdminEmail).Msg("admin user created")
	return nil
}
