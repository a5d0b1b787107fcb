package scheduling

import (
	"time"

	"slotbook/models"
)

// Store is the slice of the storage collaborator the engine needs. It is an
// interface so the engine and admission logic are testable against a fake;
// the production implementation is GormStore.
type Store interface {
	// ActiveWindows returns the provider's active availability windows that
	// overlap [from, to), using the standard interval test
	// start_at < to AND end_at > from.
	ActiveWindows(providerID uint, from, to time.Time) ([]models.AvailabilityWindow, error)

	// ConfirmedStarts returns start instants of confirmed bookings for the
	// provider and service with start_at in [from, to).
	ConfirmedStarts(providerID, serviceID uint, from, to time.Time) ([]time.Time, error)

	// ProviderApproved reports whether the provider exists and has an
	// approved profile. A missing provider is (false, nil), not an error.
	ProviderApproved(providerID uint) (bool, error)

	// ServiceByID returns the service or nil when it does not exist.
	ServiceByID(serviceID uint) (*models.Service, error)

	// CreateBooking inserts the booking. It must return ErrSlotConflict when
	// the confirmed (provider_id, start_at) uniqueness constraint rejects
	// the row.
	CreateBooking(b *models.Booking) error
}
