package booking

import (
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// ===============================
// Slot ledger
// ===============================
//
// The remaining-seat counter is the one piece of shared mutable state in the
// whole system. It must only be touched through TakeSeat/ReleaseSeat, and only
// while the slot row is held FOR UPDATE by the enclosing transaction: locking
// first, checking second, mutating third is what kills the last-seat race.

// TakeSeat claims one seat on the slot.
func TakeSeat(s *models.Slot) error {
	if s.Remaining <= 0 {
		return httperr.ErrBusinessf(
			httperr.CodeNoCapacity,
			"no seats left for slot %d on %s at %s", s.ID, s.Date, s.StartTime,
		)
	}
	s.Remaining--
	return nil
}

// ReleaseSeat returns one seat to the slot.
func ReleaseSeat(s *models.Slot) error {
	if s.Remaining >= s.Capacity {
		return httperr.ErrBusinessf(
			httperr.CodeCapacityOverflow,
			"slot %d already has all %d seats free", s.ID, s.Capacity,
		)
	}
	s.Remaining++
	return nil
}

// HasAvailability reports whether the slot still has free seats.
func HasAvailability(s *models.Slot) bool {
	return s.Remaining > 0
}

// Occupied is the number of seats currently claimed.
func Occupied(s *models.Slot) int {
	return s.Capacity - s.Remaining
}

// CanDeleteSlot allows deletion only when every seat is free.
func CanDeleteSlot(s *models.Slot) error {
	if Occupied(s) > 0 {
		return httperr.ErrBusinessf(
			httperr.CodeSlotOccupied,
			"slot %d still has %d active reservations", s.ID, Occupied(s),
		)
	}
	return nil
}
