package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"slotbook/models"
	"slotbook/scheduling"
)

// slotStore is a minimal scheduling.Store for handler tests. Times are far in
// the future so the engine's past-time check never trips.
type slotStore struct {
	windows  []models.AvailabilityWindow
	services map[uint]*models.Service
}

func (s *slotStore) ActiveWindows(providerID uint, from, to time.Time) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range s.windows {
		if w.ProviderID == providerID && w.Active && w.StartAt.Before(to) && w.EndAt.After(from) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *slotStore) ConfirmedStarts(providerID, serviceID uint, from, to time.Time) ([]time.Time, error) {
	return nil, nil
}

func (s *slotStore) ProviderApproved(providerID uint) (bool, error) {
	return true, nil
}

func (s *slotStore) ServiceByID(serviceID uint) (*models.Service, error) {
	return s.services[serviceID], nil
}

func (s *slotStore) CreateBooking(b *models.Booking) error {
	return nil
}

func newSlotApp(store *slotStore) *fiber.App {
	app := fiber.New()
	slc := NewSlotController(scheduling.NewEngine(store))
	app.Get("/slots", slc.Get)
	return app
}

func TestSlotsEndpoint_MissingParams(t *testing.T) {
	app := newSlotApp(&slotStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/slots?provider_id=1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSlotsEndpoint_UnknownService(t *testing.T) {
	app := newSlotApp(&slotStore{services: map[uint]*models.Service{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/slots?provider_id=1&service_id=9&start_at=2100-01-25T09:00:00Z", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSlotsEndpoint_ReturnsSortedSlots(t *testing.T) {
	day := time.Date(2100, 1, 25, 0, 0, 0, 0, time.UTC)
	svc := &models.Service{DurationMinutes: 30, Active: true}
	svc.ID = 1
	store := &slotStore{
		windows: []models.AvailabilityWindow{
			{ProviderID: 7, StartAt: day.Add(9 * time.Hour), EndAt: day.Add(12 * time.Hour), Active: true},
		},
		services: map[uint]*models.Service{1: svc},
	}
	app := newSlotApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/slots?provider_id=7&service_id=1&start_at=2100-01-25T09:00:00Z", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []string{
		"2100-01-25T09:00:00Z",
		"2100-01-25T09:30:00Z",
		"2100-01-25T10:00:00Z",
		"2100-01-25T10:30:00Z",
		"2100-01-25T11:00:00Z",
		"2100-01-25T11:30:00Z",
	}
	if len(payload.Slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(payload.Slots), payload.Slots)
	}
	for i := range want {
		if payload.Slots[i] != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], payload.Slots[i])
		}
	}
}

func TestSlotsEndpoint_PastAnchorRejected(t *testing.T) {
	svc := &models.Service{DurationMinutes: 30, Active: true}
	svc.ID = 1
	app := newSlotApp(&slotStore{services: map[uint]*models.Service{1: svc}})

	resp, err := app.Test(httptest.NewRequest("GET", "/slots?provider_id=7&service_id=1&start_at=2006-01-02T15:04:05Z", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
