package handlers

import (
	"errors"
	"net/http"

	"hospital-gin/internal/middleware"
	"hospital-gin/internal/models"
	"hospital-gin/internal/registry"
	"hospital-gin/internal/scheduling"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler bundles the dependencies the HTTP layer needs.
type Handler struct {
	DB        *gorm.DB
	Scheduler *scheduling.Service
	Registry  *registry.Service
	JWTSecret string
}

// New wires a Handler over db.
func New(db *gorm.DB, jwtSecret string) *Handler {
	return &Handler{
		DB:        db,
		Scheduler: scheduling.NewService(db),
		Registry:  registry.NewService(db),
		JWTSecret: jwtSecret,
	}
}

// statusFor maps business-rule rejections to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scheduling.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, scheduling.ErrSlotConflict),
		errors.Is(err, scheduling.ErrInvalidStateTransition),
		errors.Is(err, scheduling.ErrReferentialBlock),
		errors.Is(err, registry.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"message": err.Error()})
}

// currentDoctor resolves the doctor profile of the authenticated user. The
// false return means the request has already been answered.
func (h *Handler) currentDoctor(c *gin.Context) (*models.Doctor, bool) {
	var doctor models.Doctor
	if err := h.DB.Where("user_id = ?", middleware.UserID(c)).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Doctor profile not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return nil, false
	}
	return &doctor, true
}

// currentPatient resolves the patient profile of the authenticated user.
func (h *Handler) currentPatient(c *gin.Context) (*models.Patient, bool) {
	var patient models.Patient
	if err := h.DB.Where("user_id = ?", middleware.UserID(c)).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient profile not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return nil, false
	}
	return &patient, true
}
