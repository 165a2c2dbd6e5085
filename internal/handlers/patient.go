package handlers

import (
	"net/http"
	"time"

	"hospital-gin/internal/models"
	"hospital-gin/internal/scheduling"

	"github.com/gin-gonic/gin"
)

type BookAppointmentRequest struct {
	DoctorID        uint    `json:"doctor_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	AppointmentTime string  `json:"appointment_time" binding:"required"` // e.g. "10:00"
	Reason          *string `json:"reason"`
}

// PatientDashboard returns the departments, the patient's upcoming booked
// appointments, and doctors with availability in the rolling week.
func (h *Handler) PatientDashboard(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var departments []models.Department
	if err := h.DB.Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	from, to := scheduling.Horizon(time.Now())

	var upcoming []models.Appointment
	if err := h.DB.Preload("Doctor").
		Where("patient_id = ? AND appointment_date >= ? AND status = ?", patient.ID, from, models.StatusBooked).
		Order("appointment_date asc").
		Find(&upcoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	var availableDoctors []models.Doctor
	if err := h.DB.Model(&models.Doctor{}).Distinct("doctors.*").Preload("Department").
		Joins("JOIN doctor_availabilities ON doctor_availabilities.doctor_id = doctors.id").
		Where("doctor_availabilities.date >= ? AND doctor_availabilities.date <= ? AND doctor_availabilities.is_available = ?",
			from, to, true).
		Find(&availableDoctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient":               patient,
		"departments":           departments,
		"upcoming_appointments": upcoming,
		"available_doctors":     availableDoctors,
	})
}

// PatientProfile returns the authenticated patient's profile.
func (h *Handler) PatientProfile(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatientProfile edits the authenticated patient's own profile.
func (h *Handler) UpdatePatientProfile(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyPatientUpdate(patient, req)
	if err := h.DB.Save(patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// PatientDoctors returns the doctor directory, filterable by search term and
// department.
func (h *Handler) PatientDoctors(c *gin.Context) {
	search := c.Query("search")
	departmentID := c.Query("department")

	query := h.DB.Model(&models.Doctor{}).Preload("Department").
		Joins("JOIN departments ON departments.id = doctors.department_id")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("doctors.name LIKE ? OR departments.name LIKE ?", pattern, pattern)
	}
	if departmentID != "" {
		query = query.Where("doctors.department_id = ?", departmentID)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching doctors", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// BookAppointment books a slot with a doctor for the authenticated patient.
func (h *Handler) BookAppointment(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse(models.DateLayout, req.AppointmentDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment_date format, use YYYY-MM-DD"})
		return
	}

	appointment, err := h.Scheduler.Book(patient.ID, req.DoctorID, req.AppointmentDate, req.AppointmentTime, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// PatientAppointments returns all of the patient's appointments, newest
// first.
func (h *Handler) PatientAppointments(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Doctor").
		Where("patient_id = ?", patient.ID).
		Order("appointment_date desc").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CancelAppointment cancels one of the patient's booked appointments.
func (h *Handler) CancelAppointment(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}
	appointmentID, ok := parseID(c, "appointment_id")
	if !ok {
		return
	}

	appointment, err := h.Scheduler.Cancel(appointmentID, patient.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// PatientHistory returns the patient's completed appointments with their
// treatments.
func (h *Handler) PatientHistory(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Doctor").Preload("Treatment").
		Where("patient_id = ? AND status = ?", patient.ID, models.StatusCompleted).
		Order("appointment_date desc").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}
