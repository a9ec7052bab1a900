package appointmentControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type BookAppointmentRequest struct {
	ServiceID    uint      `json:"service_id" binding:"required"`
	UserID       string    `json:"user_id"`
	CustomerName string    `json:"customer_name" binding:"required"`
	Phone        string    `json:"phone" binding:"required"`
	Email        string    `json:"email"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	Note         string    `json:"note"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Image           string  `json:"image"`
}

// Appointments share the orders' open workflow: any status can be set
// to any other.
func mapAppointmentStatus(status string) (models.AppointmentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.AppointmentStatusPending):
		return models.AppointmentStatusPending, nil
	case string(models.AppointmentStatusConfirmed):
		return models.AppointmentStatusConfirmed, nil
	case string(models.AppointmentStatusCompleted):
		return models.AppointmentStatusCompleted, nil
	case string(models.AppointmentStatusCancelled):
		return models.AppointmentStatusCancelled, nil
	default:
		return "", errors.New("invalid appointment status")
	}
}

// -------- Appointment Handlers --------

// POST /appointments
func BookAppointment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookAppointmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var service models.Service
		if err := db.First(&service, req.ServiceID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		var userID *string
		if req.UserID != "" {
			userID = &req.UserID
		}

		appointment := models.Appointment{
			ServiceID:    service.ID,
			UserID:       userID,
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Email:        req.Email,
			ScheduledAt:  req.ScheduledAt,
			Note:         req.Note,
			Status:       models.AppointmentStatusPending,
		}
		if err := db.Create(&appointment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
			return
		}
		appointment.Service = &service
		c.JSON(http.StatusCreated, appointment)
	}
}

// GET /appointments (admin)
func GetAllAppointments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var appointments []models.Appointment
		if err := db.Preload("Service").
			Order("scheduled_at DESC").
			Find(&appointments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appointments)
	}
}

// PUT /appointments/:id/status
func UpdateAppointmentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateAppointmentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapAppointmentStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Appointment{}).Where("id = ?", id).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated successfully"})
	}
}

// DELETE /appointments/:id
func DeleteAppointment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Appointment{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
	}
}

// -------- Service Handlers --------

// POST /admin/services
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		service := models.Service{
			Name:            req.Name,
			Description:     req.Description,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
			Image:           req.Image,
		}
		if err := db.Create(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

// GET /services
func GetAllServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []models.Service
		if err := db.Order("name ASC").Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// PUT /admin/services/:id
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var service models.Service
		if err := db.First(&service, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		var req ServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		service.Name = req.Name
		service.Description = req.Description
		service.Price = req.Price
		service.DurationMinutes = req.DurationMinutes
		if req.Image != "" {
			service.Image = req.Image
		}
		if err := db.Save(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// DELETE /admin/services/:id
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var booked int64
		if err := db.Model(&models.Appointment{}).Where("service_id = ?", id).
			Count(&booked).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check bookings"})
			return
		}
		if booked > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Service has appointments"})
			return
		}

		result := db.Delete(&models.Service{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
	}
}
