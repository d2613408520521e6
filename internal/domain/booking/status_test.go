package booking

import (
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
)

func TestLifecycleTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTransitionRejectsWithInvalidState(t *testing.T) {
	_, err := Transition(StatusCompleted, StatusCancelled)
	if err == nil {
		t.Fatal("expected error for completed -> cancelled")
	}
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestTransitionReturnsTarget(t *testing.T) {
	got, err := Transition(StatusPending, StatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusConfirmed {
		t.Fatalf("want confirmed, got %s", got)
	}
}

func TestActiveAndTerminal(t *testing.T) {
	if !IsActive(StatusPending) || !IsActive(StatusConfirmed) {
		t.Error("pending and confirmed must be active")
	}
	if IsActive(StatusCompleted) || IsActive(StatusCancelled) {
		t.Error("terminal statuses must not be active")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusCancelled) {
		t.Error("completed and cancelled must be terminal")
	}
	if IsTerminal(StatusPending) || IsTerminal(StatusConfirmed) {
		t.Error("active statuses must not be terminal")
	}
}
