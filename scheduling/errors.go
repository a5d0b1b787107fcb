package scheduling

import "errors"

// Typed failures surfaced by the slot engine and booking admission. Handlers
// map each one to a distinct HTTP status and message; everything else is
// treated as an opaque storage failure.
var (
	// ErrPastTime: the requested instant is not strictly in the future.
	ErrPastTime = errors.New("requested time is in the past")

	// ErrPastAvailability: an availability window cannot start in the past.
	ErrPastAvailability = errors.New("availability cannot start in the past")

	// ErrProviderUnavailable: provider missing or not approved.
	ErrProviderUnavailable = errors.New("provider not found or not approved")

	// ErrServiceUnavailable: service missing or inactive.
	ErrServiceUnavailable = errors.New("service not found or inactive")

	// ErrSlotConflict: the storage layer rejected the insert because a
	// confirmed booking already holds (provider, start). Expected under
	// healthy concurrent load; callers should offer another time.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrInvalidInterval: malformed interval, start >= end.
	ErrInvalidInterval = errors.New("start must be before end")

	// ErrInvalidDuration: non-positive or out-of-range service duration.
	ErrInvalidDuration = errors.New("invalid service duration")
)
