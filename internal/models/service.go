package models

import "time"

// Service is a bookable offering of the salon (haircut, manicure, facial...).
// Duration and occupancy are copied onto each slot at slot-creation time, so
// editing a service never resizes slots that already exist.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `gorm:"not null" json:"price"`

	// MaxOccupancy is how many clients can receive the service at the same
	// time: 1 for individual treatments, more for group sessions.
	MaxOccupancy int  `gorm:"not null;default:1" json:"max_occupancy"`
	Active       bool `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
