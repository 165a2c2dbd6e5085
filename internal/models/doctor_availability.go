package models

import "time"

// DoctorAvailability is one doctor's window for a single calendar day. The
// unique index on (doctor_id, date) holds the at-most-one-row-per-day
// invariant; the week is always rewritten wholesale, never patched.
type DoctorAvailability struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	DoctorID    uint   `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_day"`
	Date        string `json:"date" gorm:"not null;uniqueIndex:idx_doctor_day"` // YYYY-MM-DD
	StartTime   string `json:"start_time" gorm:"not null"`                      // wall clock, e.g. "09:00"
	EndTime     string `json:"end_time" gorm:"not null"`                        // wall clock, e.g. "17:00"
	IsAvailable bool   `json:"is_available" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
