package models

import "time"

// GuestUser anchors a Redis-backed guest cart and an optional guest
// order to a short-lived identity.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
