package reservation

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/audit"
	"github.com/lumina-beauty/booking-api/internal/cache"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type EditReservationInput struct {
	// SlotID, when non-nil, moves the reservation onto another slot.
	SlotID *uint

	// Notes always replaces the stored note. nil clears it.
	Notes *string
}

// ======================================================
// USE CASE
// ======================================================

type EditReservation struct {
	repo  domain.Repository
	hours domain.Hours
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewEditReservation(
	repo domain.Repository,
	hours domain.Hours,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *EditReservation {
	return &EditReservation{
		repo:  repo,
		hours: hours,
		avail: avail,
		audit: auditD,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute rewrites an active reservation. Moving it to another slot is an
// atomic seat swap: both slot rows are locked in ascending id order, so two
// edits trading seats between the same pair of slots can never deadlock. The
// seat on the old slot is released and one on the new slot is taken inside
// the same transaction, leaving no window where the reservation holds zero
// or two seats.
//
// The new slot passes the same checks a fresh booking would, with this
// reservation excluded from the duplicate and overlap queries so it cannot
// conflict with itself.
func (uc *EditReservation) Execute(
	ctx context.Context,
	reservationID uint,
	in EditReservationInput,
) (*models.Reservation, error) {

	var edited *models.Reservation

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		res, err := tx.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if domain.IsTerminal(domain.Status(res.Status)) {
			return httperr.ErrBusinessf(
				httperr.CodeInvalidState,
				"cannot edit a %s reservation", res.Status,
			)
		}

		if in.SlotID != nil && (res.SlotID == nil || *res.SlotID != *in.SlotID) {
			if err := uc.moveToSlot(ctx, tx, res, *in.SlotID); err != nil {
				return err
			}
		}

		if in.Notes != nil {
			res.Notes = *in.Notes
		} else {
			res.Notes = ""
		}

		if err := tx.SaveReservation(ctx, res); err != nil {
			return err
		}

		edited = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &edited.UserID,
		Action:   "reservation_edited",
		Entity:   "reservation",
		EntityID: &edited.ID,
	})

	return edited, nil
}

// moveToSlot swaps the reservation's seat from its current slot onto newID.
// Both rows are locked before any counter moves; ascending id order keeps
// concurrent swaps over the same pair lock-compatible.
func (uc *EditReservation) moveToSlot(
	ctx context.Context,
	tx domain.Repository,
	res *models.Reservation,
	newID uint,
) error {

	var oldSlot, newSlot *models.Slot
	var err error

	if res.SlotID != nil && *res.SlotID < newID {
		if oldSlot, err = tx.GetSlotForUpdate(ctx, *res.SlotID); err != nil {
			return err
		}
	}
	if newSlot, err = tx.GetSlotForUpdate(ctx, newID); err != nil {
		return err
	}
	if res.SlotID != nil && *res.SlotID > newID {
		if oldSlot, err = tx.GetSlotForUpdate(ctx, *res.SlotID); err != nil {
			return err
		}
	}

	if err := uc.hours.CheckWindow(newSlot.StartTime, newSlot.EndTime); err != nil {
		return err
	}

	if !domain.HasAvailability(newSlot) {
		return httperr.ErrBusinessf(
			httperr.CodeNoCapacity,
			"no seats left for %s on %s at %s",
			newSlot.Service.Name, newSlot.Date, newSlot.StartTime,
		)
	}

	dup, err := tx.HasActiveReservationOnSlot(ctx, res.UserID, newSlot.ID, res.ID)
	if err != nil {
		return err
	}
	if dup {
		return httperr.ErrBusinessf(
			httperr.CodeDuplicateBooking,
			"user already holds an active reservation on this slot",
		)
	}

	overlap, err := tx.HasScheduleOverlap(
		ctx, res.UserID, newSlot.Date, newSlot.StartTime, newSlot.EndTime, res.ID,
	)
	if err != nil {
		return err
	}
	if overlap {
		return httperr.ErrBusinessf(
			httperr.CodeScheduleConflict,
			"user already has an active reservation overlapping %s-%s on %s",
			newSlot.StartTime, newSlot.EndTime, newSlot.Date,
		)
	}

	if oldSlot != nil {
		if err := domain.ReleaseSeat(oldSlot); err != nil {
			return err
		}
		if err := tx.SaveSlot(ctx, oldSlot); err != nil {
			return err
		}
		uc.avail.Invalidate(ctx, oldSlot.ServiceID, oldSlot.Date)
	}

	if err := domain.TakeSeat(newSlot); err != nil {
		return err
	}
	if err := tx.SaveSlot(ctx, newSlot); err != nil {
		return err
	}
	uc.avail.Invalidate(ctx, newSlot.ServiceID, newSlot.Date)

	price := newSlot.Service.Price
	slotID := newSlot.ID

	res.SlotID = &slotID
	res.ServiceID = newSlot.ServiceID
	res.Date = newSlot.Date
	res.StartTime = newSlot.StartTime
	res.EndTime = newSlot.EndTime
	res.FinalPrice = &price
	res.Service = newSlot.Service

	return nil
}
