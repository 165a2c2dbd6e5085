// Package registry manages the lifecycle of user accounts and their doctor or
// patient profiles: registration, admin-side creation, and the deletion rules
// that keep appointments referentially intact.
package registry

import (
	"errors"

	"hospital-gin/internal/models"
	"hospital-gin/internal/scheduling"
	"hospital-gin/internal/utils"

	"gorm.io/gorm"
)

// ErrEmailTaken means the email is already bound to a user account.
var ErrEmailTaken = errors.New("email already registered")

// Service runs account and profile lifecycle operations.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service bound to db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PatientInput is the self-registration payload.
type PatientInput struct {
	Email            string  `json:"email" binding:"required,email"`
	Password         string  `json:"password" binding:"required,min=6"`
	Name             string  `json:"name" binding:"required"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender           *string `json:"gender"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	BloodGroup       *string `json:"blood_group"`
}

// DoctorInput is the admin payload for onboarding a doctor.
type DoctorInput struct {
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	Name            string  `json:"name" binding:"required"`
	Phone           *string `json:"phone"`
	DepartmentID    uint    `json:"department_id" binding:"required"`
	Qualification   *string `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
}

// RegisterPatient creates a patient-role user and its profile in one
// transaction.
func (s *Service) RegisterPatient(in PatientInput) (*models.Patient, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var patient models.Patient
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    in.Email,
			Password: hashed,
			Role:     models.RolePatient,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}

		patient = models.Patient{
			UserID:           user.ID,
			Name:             in.Name,
			Phone:            in.Phone,
			DateOfBirth:      in.DateOfBirth,
			Gender:           in.Gender,
			Address:          in.Address,
			EmergencyContact: in.EmergencyContact,
			BloodGroup:       in.BloodGroup,
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// CreateDoctor creates a doctor-role user and its profile in one transaction.
// The department must exist.
func (s *Service) CreateDoctor(in DoctorInput) (*models.Doctor, error) {
	var department models.Department
	if err := s.db.First(&department, in.DepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var doctor models.Doctor
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    in.Email,
			Password: hashed,
			Role:     models.RoleDoctor,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}

		doctor = models.Doctor{
			UserID:          user.ID,
			DepartmentID:    in.DepartmentID,
			Name:            in.Name,
			Phone:           in.Phone,
			Qualification:   in.Qualification,
			ExperienceYears: in.ExperienceYears,
			ConsultationFee: in.ConsultationFee,
		}
		return tx.Create(&doctor).Error
	})
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// DeleteDoctor removes a doctor, their availability rows, and the owning user
// account, unless any appointment still references the doctor.
func (s *Service) DeleteDoctor(doctorID uint) error {
	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduling.ErrNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return scheduling.ErrReferentialBlock
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctorID).Delete(&models.DoctorAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, doctor.UserID).Error
	})
}

// DeletePatient removes a patient and the owning user account, unless any
// appointment still references the patient.
func (s *Service) DeletePatient(patientID uint) error {
	var patient models.Patient
	if err := s.db.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduling.ErrNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return scheduling.ErrReferentialBlock
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&patient).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, patient.UserID).Error
	})
}
