package handlers

import (
	"net/http"
	"time"

	"hospital-gin/internal/models"

	"github.com/gin-gonic/gin"
)

// Public read-only endpoints. Response shapes match the original API.

type DepartmentSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DoctorCount int64  `json:"doctor_count"`
}

type DoctorSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	Qualification   *string `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type AvailabilityWindow struct {
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// APIDepartments lists departments with their doctor counts.
func (h *Handler) APIDepartments(c *gin.Context) {
	var departments []DepartmentSummary
	err := h.DB.Model(&models.Department{}).
		Select("departments.id, departments.name, departments.description, COUNT(doctors.id) AS doctor_count").
		Joins("LEFT JOIN doctors ON doctors.department_id = departments.id").
		Group("departments.id, departments.name, departments.description").
		Order("departments.id").
		Scan(&departments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, departments)
}

// APIDoctors lists doctors, optionally filtered by department_id.
func (h *Handler) APIDoctors(c *gin.Context) {
	query := h.DB.Model(&models.Doctor{}).
		Select("doctors.id, doctors.name, departments.name AS department, doctors.qualification, doctors.experience_years, doctors.consultation_fee").
		Joins("JOIN departments ON departments.id = doctors.department_id").
		Order("doctors.id")

	if departmentID := c.Query("department_id"); departmentID != "" {
		query = query.Where("doctors.department_id = ?", departmentID)
	}

	var doctors []DoctorSummary
	if err := query.Scan(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// APIDoctorAvailability lists a doctor's available windows for the next 7
// days.
func (h *Handler) APIDoctorAvailability(c *gin.Context) {
	doctorID, ok := parseID(c, "doctor_id")
	if !ok {
		return
	}

	rows, err := h.Scheduler.Week(doctorID, time.Now())
	if err != nil {
		fail(c, err)
		return
	}

	windows := make([]AvailabilityWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, AvailabilityWindow{
			Date:      row.Date,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}
	c.JSON(http.StatusOK, windows)
}
