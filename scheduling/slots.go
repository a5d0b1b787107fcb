package scheduling

import (
	"sort"
	"time"

	"slotbook/models"
)

// Lookahead bounds a single slot query: one invocation only ever searches
// [anchor, anchor+24h). Callers interested in a specific day issue one call
// per day.
const Lookahead = 24 * time.Hour

// Engine computes bookable slots and admits bookings over an injected Store.
type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Slots returns the sorted, deduplicated start instants at which the provider
// could begin the service within 24 hours of anchor. The result is a
// point-in-time snapshot: nothing is reserved, and a returned slot can be
// taken by a concurrent booking before the caller acts on it.
func (e *Engine) Slots(providerID, serviceID uint, anchor time.Time) ([]time.Time, error) {
	if anchor.Before(e.now()) {
		return nil, ErrPastTime
	}

	service, err := e.store.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, ErrServiceUnavailable
	}
	if service.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	horizon := anchor.Add(Lookahead)

	windows, err := e.store.ActiveWindows(providerID, anchor, horizon)
	if err != nil {
		return nil, err
	}

	booked, err := e.store.ConfirmedStarts(providerID, serviceID, anchor, horizon)
	if err != nil {
		return nil, err
	}

	step := time.Duration(service.DurationMinutes) * time.Minute
	return enumerateSlots(windows, booked, anchor, horizon, step), nil
}

// enumerateSlots is the pure slot arithmetic: clip each window to
// [anchor, horizon), walk it in fixed steps, drop candidates whose start is
// already booked, then sort. A candidate is emitted only while a full step
// still fits before the clipped end. Overlapping windows can yield the same
// candidate twice, so duplicates are dropped.
func enumerateSlots(windows []models.AvailabilityWindow, booked []time.Time, anchor, horizon time.Time, step time.Duration) []time.Time {
	bookedSet := make(map[int64]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t.UnixNano()] = struct{}{}
	}

	seen := make(map[int64]struct{})
	var slots []time.Time

	for _, w := range windows {
		start := w.StartAt
		if start.Before(anchor) {
			start = anchor
		}
		end := w.EndAt
		if end.After(horizon) {
			end = horizon
		}

		for t := start; !t.Add(step).After(end); t = t.Add(step) {
			key := t.UnixNano()
			if _, taken := bookedSet[key]; taken {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			slots = append(slots, t)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}
