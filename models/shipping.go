package models

import "time"

// ShippingInfo is written once at order creation and never updated.
type ShippingInfo struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Phone      string    `gorm:"not null" json:"phone"`
	Email      string    `gorm:"not null" json:"email"`
	Address    string    `gorm:"not null" json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
}
