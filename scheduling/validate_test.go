package scheduling

import (
	"testing"
	"time"
)

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  error
	}{
		{"valid", now.Add(time.Hour), now.Add(3 * time.Hour), nil},
		{"past start", now.Add(-time.Minute), now.Add(time.Hour), ErrPastAvailability},
		{"start equals end", now.Add(time.Hour), now.Add(time.Hour), ErrInvalidInterval},
		{"start after end", now.Add(2 * time.Hour), now.Add(time.Hour), ErrInvalidInterval},
	}

	for _, c := range cases {
		if got := ValidateWindow(c.start, c.end, now); got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}
