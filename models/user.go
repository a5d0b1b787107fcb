package models

import (
	"time"
)

// Role is the closed set of account roles. Authorization decisions switch on
// these values exhaustively; there is no permission table behind them.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name"`
	Email           string           `json:"email" gorm:"unique"`
	Password        string           `json:"password,omitempty"`
	Role            Role             `json:"role" gorm:"type:varchar(16);not null"`
	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
