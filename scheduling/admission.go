package scheduling

import (
	"time"

	"github.com/google/uuid"

	"slotbook/models"
)

// CreateBooking durably creates a confirmed booking if all preconditions hold
// at write time. Preconditions short-circuit in order: future start, approved
// provider, active service, then the insert itself. The double-booking race
// is resolved by the storage constraint, not here: when two requests for the
// same (provider, start) run concurrently, both pass the checks and exactly
// one insert succeeds. Do not add application-level locking around this.
func (e *Engine) CreateBooking(customerID, providerID, serviceID uint, startAt time.Time) (*models.Booking, error) {
	if !startAt.After(e.now()) {
		return nil, ErrPastTime
	}

	approved, err := e.store.ProviderApproved(providerID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, ErrProviderUnavailable
	}

	service, err := e.store.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, ErrServiceUnavailable
	}

	booking := &models.Booking{
		Reference:  uuid.NewString(),
		CustomerID: customerID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		StartAt:    startAt,
		// Duration is copied from the service now; later service edits do
		// not touch existing bookings.
		DurationMinutes: service.DurationMinutes,
		Status:          models.StatusConfirmed,
	}

	if err := e.store.CreateBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}
