package router

import (
	"hospital-gin/internal/handlers"
	"hospital-gin/internal/middleware"
	"hospital-gin/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the route table for all portals.
func New(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	{
		api.GET("/departments", h.APIDepartments)
		api.GET("/doctors", h.APIDoctors)
		api.GET("/doctors/:doctor_id/availability", h.APIDoctorAvailability)
	}

	admin := r.Group("/admin", middleware.Authenticate(h.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.GET("/doctors", h.ListDoctors)
		admin.POST("/doctors", h.CreateDoctor)
		admin.PUT("/doctors/:doctor_id", h.UpdateDoctor)
		admin.DELETE("/doctors/:doctor_id", h.DeleteDoctor)
		admin.GET("/patients", h.ListPatients)
		admin.PUT("/patients/:patient_id", h.UpdatePatient)
		admin.DELETE("/patients/:patient_id", h.DeletePatient)
		admin.GET("/appointments", h.ListAppointments)
	}

	doctor := r.Group("/doctor", middleware.Authenticate(h.JWTSecret), middleware.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/dashboard", h.DoctorDashboard)
		doctor.GET("/appointments", h.DoctorAppointments)
		doctor.POST("/appointments/:appointment_id/complete", h.CompleteAppointment)
		doctor.GET("/patients/:patient_id/history", h.DoctorPatientHistory)
		doctor.GET("/availability", h.GetAvailability)
		doctor.PUT("/availability", h.PutAvailability)
	}

	patient := r.Group("/patient", middleware.Authenticate(h.JWTSecret), middleware.RequireRole(models.RolePatient))
	{
		patient.GET("/dashboard", h.PatientDashboard)
		patient.GET("/profile", h.PatientProfile)
		patient.PUT("/profile", h.UpdatePatientProfile)
		patient.GET("/doctors", h.PatientDoctors)
		patient.POST("/appointments", h.BookAppointment)
		patient.GET("/appointments", h.PatientAppointments)
		patient.POST("/appointments/:appointment_id/cancel", h.CancelAppointment)
		patient.GET("/history", h.PatientHistory)
	}

	return r
}
