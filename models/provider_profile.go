package models

import (
	"gorm.io/gorm"
)

// ProviderProfile exists for every user registered as a provider. Providers
// cannot publish availability or receive bookings until an admin flips
// Approved.
type ProviderProfile struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex"`
	User     User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Bio      string `json:"bio"`
	Approved bool   `json:"approved" gorm:"default:false"`
}
