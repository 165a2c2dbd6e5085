package scheduling

import "errors"

// Business-rule rejections. All of them are recovered at the request boundary
// and mapped to client-facing statuses; none is fatal.
var (
	// ErrSlotConflict means another appointment already holds the same
	// (doctor, date, time) slot, whatever its status.
	ErrSlotConflict = errors.New("time slot already booked")

	// ErrUnauthorized means the acting doctor or patient does not own the
	// appointment they tried to change.
	ErrUnauthorized = errors.New("actor does not own this appointment")

	// ErrInvalidStateTransition means the appointment is not in the status
	// the operation requires. Completed and Cancelled are terminal.
	ErrInvalidStateTransition = errors.New("appointment is not in a state that allows this transition")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrReferentialBlock means a doctor or patient cannot be deleted while
	// appointments still reference them.
	ErrReferentialBlock = errors.New("entity has dependent appointments")
)
