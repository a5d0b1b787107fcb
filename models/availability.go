package models

import (
	"time"

	"gorm.io/gorm"
)

// AvailabilityWindow is a provider-declared contiguous span of bookable time.
// Windows are append-only: there is no edit endpoint, and overlapping windows
// for the same provider are allowed in storage. Invariant: StartAt < EndAt.
type AvailabilityWindow struct {
	gorm.Model
	ProviderID uint      `json:"provider_id" gorm:"index"`
	Provider   User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	StartAt    time.Time `json:"start_at" gorm:"index"`
	EndAt      time.Time `json:"end_at"`
	Active     bool      `json:"active" gorm:"default:true"`
}
