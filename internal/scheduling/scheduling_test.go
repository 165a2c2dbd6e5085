package scheduling

import (
	"testing"

	"hospital-gin/internal/database"
	"hospital-gin/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB, email string) models.Doctor {
	t.Helper()

	department := models.Department{Name: "Cardiology " + email, Description: "Heart"}
	require.NoError(t, db.Create(&department).Error)

	user := models.User{Email: email, Password: "hash", Role: models.RoleDoctor, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	doctor := models.Doctor{UserID: user.ID, DepartmentID: department.ID, Name: "Dr. " + email}
	require.NoError(t, db.Create(&doctor).Error)
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, email string) models.Patient {
	t.Helper()

	user := models.User{Email: email, Password: "hash", Role: models.RolePatient, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	patient := models.Patient{UserID: user.ID, Name: "Patient " + email}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}
