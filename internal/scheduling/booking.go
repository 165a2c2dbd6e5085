package scheduling

import (
	"errors"

	"hospital-gin/internal/models"

	"gorm.io/gorm"
)

// TreatmentInput carries the outcome a doctor records when completing an
// appointment.
type TreatmentInput struct {
	Diagnosis    string  `json:"diagnosis" binding:"required"`
	Prescription string  `json:"prescription" binding:"required"`
	Notes        *string `json:"notes"`
	FollowUpDate *string `json:"follow_up_date"` // YYYY-MM-DD
}

// Book inserts a Booked appointment for the given slot. There is no separate
// existence pre-check: the insert races straight into the unique index on
// (doctor_id, appointment_date, appointment_time), and a duplicate-key error
// comes back as ErrSlotConflict. Cancelled appointments keep their slot.
func (s *Service) Book(patientID, doctorID uint, date, timeOfDay string, reason *string) (*models.Appointment, error) {
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          models.StatusBooked,
		Reason:          reason,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return &appointment, nil
}

// Complete transitions a Booked appointment owned by doctorID to Completed
// and records exactly one Treatment, in a single transaction. Completing an
// appointment that is already Completed or Cancelled is rejected.
func (s *Service) Complete(appointmentID, doctorID uint, in TreatmentInput) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if appointment.DoctorID != doctorID {
			return ErrUnauthorized
		}

		// Conditional update: the status guard in the WHERE clause keeps a
		// concurrent second completion from slipping through.
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", appointmentID, models.StatusBooked).
			Update("status", models.StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStateTransition
		}

		treatment := models.Treatment{
			AppointmentID: appointmentID,
			Diagnosis:     in.Diagnosis,
			Prescription:  in.Prescription,
			Notes:         in.Notes,
			FollowUpDate:  in.FollowUpDate,
		}
		if err := tx.Create(&treatment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrInvalidStateTransition
			}
			return err
		}

		appointment.Status = models.StatusCompleted
		appointment.Treatment = &treatment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Cancel transitions a Booked appointment owned by patientID to Cancelled.
func (s *Service) Cancel(appointmentID, patientID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if appointment.PatientID != patientID {
			return ErrUnauthorized
		}

		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", appointmentID, models.StatusBooked).
			Update("status", models.StatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStateTransition
		}

		appointment.Status = models.StatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
