package models

import (
	"gorm.io/gorm"
)

const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 240
)

// Service is a bookable offering. DurationMinutes doubles as the slot step:
// slots for a service are enumerated on a grid of its own duration.
type Service struct {
	gorm.Model
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" gorm:"not null"`
	Active          bool   `json:"active" gorm:"default:true"`
}
