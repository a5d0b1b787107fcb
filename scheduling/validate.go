package scheduling

import "time"

// ValidateWindow checks a new availability window before any storage access:
// the window must start in the future and start must precede end.
func ValidateWindow(start, end, now time.Time) error {
	if start.Before(now) {
		return ErrPastAvailability
	}
	if !start.Before(end) {
		return ErrInvalidInterval
	}
	return nil
}
