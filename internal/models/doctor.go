package models

import "time"

// Doctor defines the profile owned by a doctor-role user.
type Doctor struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	UserID          uint    `json:"user_id" gorm:"not null;index"`
	DepartmentID    uint    `json:"department_id" gorm:"not null;index"`
	Name            string  `json:"name" gorm:"not null"`
	Phone           *string `json:"phone"`
	Qualification   *string `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Department   Department           `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Appointments []Appointment        `json:"appointments,omitempty" gorm:"foreignKey:DoctorID"`
	Availability []DoctorAvailability `json:"availability,omitempty" gorm:"foreignKey:DoctorID"`
}
