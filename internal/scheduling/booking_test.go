package scheduling

import (
	"testing"

	"hospital-gin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestBookTwiceSameSlotConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	alice := seedPatient(t, db, "alice@example.com")
	bob := seedPatient(t, db, "bob@example.com")

	first, err := svc.Book(alice.ID, doctor.ID, "2024-06-10", "10:00", strptr("checkup"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, first.Status)
	assert.NotZero(t, first.ID)

	_, err = svc.Book(bob.ID, doctor.ID, "2024-06-10", "10:00", nil)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBookSameTimeDifferentDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doc1 := seedDoctor(t, db, "doc1@hospital.com")
	doc2 := seedDoctor(t, db, "doc2@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	_, err := svc.Book(patient.ID, doc1.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)
	_, err = svc.Book(patient.ID, doc2.ID, "2024-06-10", "10:00", nil)
	assert.NoError(t, err)
}

func TestBookUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	patient := seedPatient(t, db, "alice@example.com")

	_, err := svc.Book(patient.ID, 999, "2024-06-10", "10:00", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelledSlotStaysBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	appointment, err := svc.Book(patient.ID, doctor.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(appointment.ID, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	_, err = svc.Book(patient.ID, doctor.ID, "2024-06-10", "10:00", nil)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCompleteRecordsOneTreatment(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	appointment, err := svc.Book(patient.ID, doctor.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)

	input := TreatmentInput{Diagnosis: "flu", Prescription: "rest", FollowUpDate: strptr("2024-06-20")}
	completed, err := svc.Complete(appointment.ID, doctor.ID, input)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Treatment)
	assert.Equal(t, "flu", completed.Treatment.Diagnosis)

	var count int64
	require.NoError(t, db.Model(&models.Treatment{}).Where("appointment_id = ?", appointment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Completing twice is rejected and leaves the single treatment intact.
	_, err = svc.Complete(appointment.ID, doctor.ID, input)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	require.NoError(t, db.Model(&models.Treatment{}).Where("appointment_id = ?", appointment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCompleteByOtherDoctorUnauthorized(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	owner := seedDoctor(t, db, "doc1@hospital.com")
	intruder := seedDoctor(t, db, "doc2@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	appointment, err := svc.Book(patient.ID, owner.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)

	_, err = svc.Complete(appointment.ID, intruder.ID, TreatmentInput{Diagnosis: "x", Prescription: "y"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	var count int64
	require.NoError(t, db.Model(&models.Treatment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCompleteUnknownAppointment(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")

	_, err := svc.Complete(999, doctor.ID, TreatmentInput{Diagnosis: "x", Prescription: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelByOtherPatientUnauthorized(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	alice := seedPatient(t, db, "alice@example.com")
	bob := seedPatient(t, db, "bob@example.com")

	appointment, err := svc.Book(alice.ID, doctor.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)

	_, err = svc.Cancel(appointment.ID, bob.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var reloaded models.Appointment
	require.NoError(t, db.First(&reloaded, appointment.ID).Error)
	assert.Equal(t, models.StatusBooked, reloaded.Status)
}

func TestCancelCompletedAppointmentRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	appointment, err := svc.Book(patient.ID, doctor.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)
	_, err = svc.Complete(appointment.ID, doctor.ID, TreatmentInput{Diagnosis: "x", Prescription: "y"})
	require.NoError(t, err)

	_, err = svc.Cancel(appointment.ID, patient.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestCancelTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	doctor := seedDoctor(t, db, "doc1@hospital.com")
	patient := seedPatient(t, db, "alice@example.com")

	appointment, err := svc.Book(patient.ID, doctor.ID, "2024-06-10", "10:00", nil)
	require.NoError(t, err)
	_, err = svc.Cancel(appointment.ID, patient.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(appointment.ID, patient.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}
