package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-gin/internal/models"
	"hospital-gin/internal/registry"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateDoctorRequest struct {
	Name            string  `json:"name" binding:"required"`
	Phone           *string `json:"phone"`
	DepartmentID    uint    `json:"department_id" binding:"required"`
	Qualification   *string `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type UpdatePatientRequest struct {
	Name             string  `json:"name" binding:"required"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"date_of_birth"`
	Gender           *string `json:"gender"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	BloodGroup       *string `json:"blood_group"`
}

// AdminDashboard returns portal totals and the ten most recent appointments.
func (h *Handler) AdminDashboard(c *gin.Context) {
	var totalDoctors, totalPatients, totalAppointments, pendingAppointments int64
	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{h.DB.Model(&models.Doctor{}), &totalDoctors},
		{h.DB.Model(&models.Patient{}), &totalPatients},
		{h.DB.Model(&models.Appointment{}), &totalAppointments},
		{h.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusBooked), &pendingAppointments},
	}
	for _, cnt := range counts {
		if err := cnt.query.Count(cnt.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
			return
		}
	}

	var recent []models.Appointment
	if err := h.DB.Preload("Patient").Preload("Doctor").
		Order("created_at desc").Limit(10).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_doctors":        totalDoctors,
		"total_patients":       totalPatients,
		"total_appointments":   totalAppointments,
		"pending_appointments": pendingAppointments,
		"recent_appointments":  recent,
	})
}

// ListDoctors returns all doctors, optionally filtered by a search term that
// matches doctor or department names.
func (h *Handler) ListDoctors(c *gin.Context) {
	search := c.Query("search")

	query := h.DB.Model(&models.Doctor{}).Preload("Department").
		Joins("JOIN departments ON departments.id = doctors.department_id")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("doctors.name LIKE ? OR departments.name LIKE ?", pattern, pattern)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching doctors", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor onboards a doctor together with their user account.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req registry.DoctorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.Registry.CreateDoctor(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctor edits a doctor profile.
func (h *Handler) UpdateDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "doctor_id")
	if !ok {
		return
	}
	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	doctor.Name = req.Name
	doctor.Phone = req.Phone
	doctor.DepartmentID = req.DepartmentID
	doctor.Qualification = req.Qualification
	doctor.ExperienceYears = req.ExperienceYears
	doctor.ConsultationFee = req.ConsultationFee

	if err := h.DB.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update doctor", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// DeleteDoctor removes a doctor and their user account; blocked while any
// appointment references the doctor.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "doctor_id")
	if !ok {
		return
	}
	if err := h.Registry.DeleteDoctor(doctorID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// ListPatients returns all patients, optionally filtered by name or phone.
func (h *Handler) ListPatients(c *gin.Context) {
	search := c.Query("search")

	query := h.DB.Model(&models.Patient{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", pattern, pattern)
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching patients", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// UpdatePatient edits a patient profile on the patient's behalf.
func (h *Handler) UpdatePatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}
	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	applyPatientUpdate(&patient, req)
	if err := h.DB.Save(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// DeletePatient removes a patient and their user account; blocked while any
// appointment references the patient.
func (h *Handler) DeletePatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}
	if err := h.Registry.DeletePatient(patientID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

// ListAppointments returns every appointment, newest date first.
func (h *Handler) ListAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Preload("Patient").Preload("Doctor").
		Order("appointment_date desc").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching appointments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func applyPatientUpdate(patient *models.Patient, req UpdatePatientRequest) {
	patient.Name = req.Name
	patient.Phone = req.Phone
	patient.DateOfBirth = req.DateOfBirth
	patient.Gender = req.Gender
	patient.Address = req.Address
	patient.EmergencyContact = req.EmergencyContact
	patient.BloodGroup = req.BloodGroup
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + param + " format"})
		return 0, false
	}
	return uint(id), true
}
