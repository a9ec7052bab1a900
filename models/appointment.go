package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Service is something bookable (e.g. a fitting or consultation slot).
type Service struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Image           string  `json:"image"`
}

type Appointment struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID uint     `gorm:"index;not null" json:"service_id"`
	Service   *Service `json:"service,omitempty"`
	UserID    *string  `gorm:"index" json:"user_id"`

	CustomerName string    `gorm:"not null" json:"customer_name"`
	Phone        string    `gorm:"not null" json:"phone"`
	Email        string    `json:"email"`
	ScheduledAt  time.Time `gorm:"not null" json:"scheduled_at"`
	Note         string    `json:"note"`

	Status    AppointmentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
