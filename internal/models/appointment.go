package models

import "time"

// DateLayout is the wire and storage format for calendar dates. Storing dates
// as strings keeps range queries lexicographic and portable across drivers.
const DateLayout = "2006-01-02"

// Appointment statuses. Booked is the only non-terminal status: a booked
// appointment may move to Completed or Cancelled, nothing leaves either.
const (
	StatusBooked    = "Booked"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment is one claim on a (doctor, date, time) slot. The composite
// unique index is the enforcement point for double-booking: inserts racing for
// the same slot resolve at the store, not in application checks.
type Appointment struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	PatientID       uint    `json:"patient_id" gorm:"not null;index"`
	DoctorID        uint    `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	AppointmentDate string  `json:"appointment_date" gorm:"not null;uniqueIndex:idx_doctor_slot"` // YYYY-MM-DD
	AppointmentTime string  `json:"appointment_time" gorm:"not null;uniqueIndex:idx_doctor_slot"` // e.g. "10:00"
	Status          string  `json:"status" gorm:"not null;default:'Booked';index"`
	Reason          *string `json:"reason"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Patient   Patient    `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Doctor    Doctor     `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Treatment *Treatment `json:"treatment,omitempty" gorm:"foreignKey:AppointmentID"`
}

// IsBooked reports whether the appointment can still transition.
func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}
