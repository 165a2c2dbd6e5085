// Package scheduling implements the appointment booking reconciler and the
// per-doctor availability manager. Every call takes the acting patient or
// doctor ID explicitly; nothing here reads ambient session state.
package scheduling

import "gorm.io/gorm"

// HorizonDays is the rolling forward-looking window over which availability
// and booking queries operate, counting today.
const HorizonDays = 7

// Service runs booking and availability operations against the store.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service bound to db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}
