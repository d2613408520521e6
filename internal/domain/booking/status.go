package booking

import "github.com/lumina-beauty/booking-api/internal/httperr"

// ===============================
// Reservation lifecycle
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the single source of truth for the lifecycle:
//
//	pending → confirmed → completed
//	pending → cancelled
//	confirmed → cancelled
//
// completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the edge and returns the new status, failing with
// invalid_state on anything the table does not allow.
func Transition(from, to Status) (Status, error) {
	if !CanTransition(from, to) {
		return from, httperr.ErrBusinessf(
			httperr.CodeInvalidState,
			"cannot go from %s to %s", from, to,
		)
	}
	return to, nil
}

// IsActive reports whether a reservation in this status still holds its seat.
// Only active reservations count for duplicate and overlap checks.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether the reservation can no longer change slot.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}
