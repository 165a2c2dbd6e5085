package models

import "time"

// Treatment records the outcome of a completed appointment. The unique index
// on AppointmentID caps it at one row per appointment; rows are never updated.
type Treatment struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	AppointmentID uint    `json:"appointment_id" gorm:"not null;uniqueIndex"`
	Diagnosis     string  `json:"diagnosis"`
	Prescription  string  `json:"prescription"`
	Notes         *string `json:"notes"`
	FollowUpDate  *string `json:"follow_up_date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
