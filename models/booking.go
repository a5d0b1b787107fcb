package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking reserves a start instant with a provider. The composite unique
// index on (provider_id, start_at), restricted to confirmed rows, is what
// makes concurrent double booking impossible: two inserts for the same
// provider and instant race at the constraint and exactly one wins.
type Booking struct {
	gorm.Model
	Reference       string        `json:"reference" gorm:"uniqueIndex"`
	CustomerID      uint          `json:"customer_id"`
	Customer        User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID      uint          `json:"provider_id" gorm:"uniqueIndex:uniq_confirmed_provider_start,where:status = 'confirmed'"`
	Provider        User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID       uint          `json:"service_id"`
	Service         Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StartAt         time.Time     `json:"start_at" gorm:"uniqueIndex:uniq_confirmed_provider_start,where:status = 'confirmed'"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status" gorm:"type:varchar(16);default:'confirmed'"`
	ReminderSentAt  *time.Time    `json:"reminder_sent_at,omitempty"`
}

// EndAt is derived; the duration was copied from the service at creation time
// and does not track later service edits.
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusConfirmed
	}
	return nil
}

// CanTransitionTo encodes the lifecycle: confirmed may become cancelled or
// completed; cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	case StatusCancelled, StatusCompleted:
		return false
	}
	return false
}

// UpdateStatus applies a lifecycle transition after validating it.
func (b *Booking) UpdateStatus(tx *gorm.DB, next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, next)
	}
	b.Status = next
	return tx.Save(b).Error
}

// CanBeCancelledBy: the owning customer, the assigned provider, or an admin.
// Cancelling a booking whose start has already passed is allowed here; the UI
// hides the control for past bookings but the API permits historical
// correction.
func (b *Booking) CanBeCancelledBy(actorID uint, role Role) bool {
	switch role {
	case RoleCustomer:
		return b.CustomerID == actorID
	case RoleProvider:
		return b.ProviderID == actorID
	case RoleAdmin:
		return true
	}
	return false
}

// CanBeCompletedBy: only the assigned provider or an admin.
func (b *Booking) CanBeCompletedBy(actorID uint, role Role) bool {
	switch role {
	case RoleProvider:
		return b.ProviderID == actorID
	case RoleAdmin:
		return true
	case RoleCustomer:
		return false
	}
	return false
}
