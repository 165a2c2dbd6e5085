package models

import "time"

// Patient defines the profile owned by a patient-role user.
type Patient struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	UserID           uint    `json:"user_id" gorm:"not null;index"`
	Name             string  `json:"name" gorm:"not null"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender           *string `json:"gender"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	BloodGroup       *string `json:"blood_group"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
}
