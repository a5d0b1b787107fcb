package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		ok   bool
	}{
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s: expected %v, got %v", c.from, c.to, c.ok, got)
		}
	}
}

func TestBookingCancellationAuthorization(t *testing.T) {
	b := Booking{CustomerID: 3, ProviderID: 7}

	cases := []struct {
		name    string
		actorID uint
		role    Role
		ok      bool
	}{
		{"owning customer", 3, RoleCustomer, true},
		{"other customer", 4, RoleCustomer, false},
		{"assigned provider", 7, RoleProvider, true},
		{"other provider", 8, RoleProvider, false},
		{"admin", 1, RoleAdmin, true},
	}

	for _, c := range cases {
		if got := b.CanBeCancelledBy(c.actorID, c.role); got != c.ok {
			t.Errorf("%s: expected %v, got %v", c.name, c.ok, got)
		}
	}
}

func TestBookingCompletionAuthorization(t *testing.T) {
	b := Booking{CustomerID: 3, ProviderID: 7}

	cases := []struct {
		name    string
		actorID uint
		role    Role
		ok      bool
	}{
		{"owning customer", 3, RoleCustomer, false},
		{"assigned provider", 7, RoleProvider, true},
		{"other provider", 8, RoleProvider, false},
		{"admin", 1, RoleAdmin, true},
	}

	for _, c := range cases {
		if got := b.CanBeCompletedBy(c.actorID, c.role); got != c.ok {
			t.Errorf("%s: expected %v, got %v", c.name, c.ok, got)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleProvider, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("receptionist").Valid() {
		t.Error("unknown role should be invalid")
	}
}
