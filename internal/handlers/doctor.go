package handlers

import (
	"net/http"
	"time"

	"hospital-gin/internal/models"
	"hospital-gin/internal/scheduling"

	"github.com/gin-gonic/gin"
)

type WeeklyAvailabilityRequest struct {
	Days []scheduling.DaySelection `json:"days" binding:"required,dive"`
}

// DoctorDashboard returns the doctor's upcoming week of booked appointments,
// today's appointments, and the distinct patients they have seen.
func (h *Handler) DoctorDashboard(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	today := time.Now()
	from, to := scheduling.Horizon(today)

	var upcoming []models.Appointment
	if err := h.DB.Preload("Patient").
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date <= ? AND status = ?",
			doctor.ID, from, to, models.StatusBooked).
		Order("appointment_date asc, appointment_time asc").
		Find(&upcoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	var todays []models.Appointment
	if err := h.DB.Preload("Patient").
		Where("doctor_id = ? AND appointment_date = ?", doctor.ID, from).
		Find(&todays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	var patients []models.Patient
	if err := h.DB.Model(&models.Patient{}).Distinct("patients.*").
		Joins("JOIN appointments ON appointments.patient_id = patients.id").
		Where("appointments.doctor_id = ?", doctor.ID).
		Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":                doctor,
		"upcoming_appointments": upcoming,
		"today_appointments":    todays,
		"patients":              patients,
	})
}

// DoctorAppointments returns all of the doctor's appointments, newest first.
func (h *Handler) DoctorAppointments(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Patient").Preload("Treatment").
		Where("doctor_id = ?", doctor.ID).
		Order("appointment_date desc").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CompleteAppointment marks one of the doctor's booked appointments Completed
// and records the treatment.
func (h *Handler) CompleteAppointment(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}
	appointmentID, ok := parseID(c, "appointment_id")
	if !ok {
		return
	}

	var req scheduling.TreatmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FollowUpDate != nil {
		if _, err := time.Parse(models.DateLayout, *req.FollowUpDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid follow_up_date format, use YYYY-MM-DD"})
			return
		}
	}

	appointment, err := h.Scheduler.Complete(appointmentID, doctor.ID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// DoctorPatientHistory returns a patient's completed appointments with this
// doctor, including treatments.
func (h *Handler) DoctorPatientHistory(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Preload("Treatment").
		Where("patient_id = ? AND doctor_id = ? AND status = ?", patientID, doctor.ID, models.StatusCompleted).
		Order("appointment_date desc").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAvailability returns the 7-day editing view of the doctor's windows.
func (h *Handler) GetAvailability(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	days, err := h.Scheduler.WeekTemplate(doctor.ID, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// PutAvailability atomically replaces the doctor's windows for the rolling
// week.
func (h *Handler) PutAvailability(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	var req WeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, day := range req.Days {
		if _, err := time.Parse(models.DateLayout, day.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, use YYYY-MM-DD"})
			return
		}
	}

	if err := h.Scheduler.ReplaceWeek(doctor.ID, time.Now(), req.Days); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}
