package scheduling

import (
	"testing"
	"time"

	"slotbook/models"
)

func admissionStore() *fakeStore {
	return &fakeStore{
		approved: map[uint]bool{7: true},
		services: thirtyMinService(),
	}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	store := admissionStore()
	e := newTestEngine(store, at(8, 0))

	b, err := e.CreateBooking(3, 7, 1, at(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}
	if b.DurationMinutes != 30 {
		t.Fatalf("duration should be copied from service, got %d", b.DurationMinutes)
	}
	if b.Reference == "" {
		t.Fatal("expected a booking reference")
	}
	if len(store.created) != 1 {
		t.Fatalf("expected exactly one row written, got %d", len(store.created))
	}
}

func TestCreateBooking_PastStartWritesNothing(t *testing.T) {
	store := admissionStore()
	e := newTestEngine(store, at(10, 1))

	_, err := e.CreateBooking(3, 7, 1, at(10, 0))
	if err != ErrPastTime {
		t.Fatalf("expected ErrPastTime, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("no row should be written, got %d", len(store.created))
	}
}

func TestCreateBooking_StartEqualToNowRejected(t *testing.T) {
	store := admissionStore()
	e := newTestEngine(store, at(10, 0))

	if _, err := e.CreateBooking(3, 7, 1, at(10, 0)); err != ErrPastTime {
		t.Fatalf("start must be strictly in the future, got %v", err)
	}
}

func TestCreateBooking_UnapprovedProvider(t *testing.T) {
	store := admissionStore()
	store.approved[7] = false
	e := newTestEngine(store, at(8, 0))

	if _, err := e.CreateBooking(3, 7, 1, at(10, 0)); err != ErrProviderUnavailable {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestCreateBooking_MissingProvider(t *testing.T) {
	store := admissionStore()
	e := newTestEngine(store, at(8, 0))

	if _, err := e.CreateBooking(3, 404, 1, at(10, 0)); err != ErrProviderUnavailable {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestCreateBooking_InactiveService(t *testing.T) {
	store := admissionStore()
	store.services[1].Active = false
	e := newTestEngine(store, at(8, 0))

	if _, err := e.CreateBooking(3, 7, 1, at(10, 0)); err != ErrServiceUnavailable {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestCreateBooking_PreconditionOrder(t *testing.T) {
	// Past start short-circuits before the provider check: even with an
	// unknown provider and service, a past time must report ErrPastTime.
	store := &fakeStore{}
	e := newTestEngine(store, at(10, 0))

	if _, err := e.CreateBooking(3, 404, 404, at(9, 0)); err != ErrPastTime {
		t.Fatalf("expected ErrPastTime first, got %v", err)
	}
	// With a future time, the provider check comes before the service check.
	if _, err := e.CreateBooking(3, 404, 404, at(11, 0)); err != ErrProviderUnavailable {
		t.Fatalf("expected ErrProviderUnavailable before service check, got %v", err)
	}
}

func TestCreateBooking_SecondIdenticalCallConflicts(t *testing.T) {
	store := admissionStore()
	e := newTestEngine(store, at(8, 0))

	start := time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)
	if _, err := e.CreateBooking(3, 7, 1, start); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}
	if _, err := e.CreateBooking(4, 7, 1, start); err != ErrSlotConflict {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("exactly one confirmed row should exist, got %d", len(store.created))
	}
}

func TestCreateBooking_SlotVisibleThenBooked(t *testing.T) {
	// A slot returned by the engine is advisory only; admission re-validates
	// and the store constraint resolves the race.
	store := admissionStore()
	store.windows = []models.AvailabilityWindow{
		{ProviderID: 7, StartAt: at(9, 0), EndAt: at(12, 0), Active: true},
	}
	e := newTestEngine(store, at(8, 0))

	slots, err := e.Slots(7, 1, at(9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	target := slots[0]
	if _, err := e.CreateBooking(3, 7, 1, target); err != nil {
		t.Fatalf("booking a computed slot should succeed: %v", err)
	}
	if _, err := e.CreateBooking(4, 7, 1, target); err != ErrSlotConflict {
		t.Fatalf("expected ErrSlotConflict for the raced slot, got %v", err)
	}
}
