package handlers

import (
	"errors"
	"net/http"

	"hospital-gin/internal/auth"
	"hospital-gin/internal/models"
	"hospital-gin/internal/registry"
	"hospital-gin/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a patient account with its profile.
func (h *Handler) Register(c *gin.Context) {
	var req registry.PatientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.Registry.RegisterPatient(req)
	if err != nil {
		if errors.Is(err, registry.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered. Please login."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// Login checks credentials and returns a signed token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "details": err.Error()})
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"message": "Your account has been deactivated. Please contact admin."})
		return
	}

	token, err := auth.Sign(&user, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role, "user_id": user.ID})
}
