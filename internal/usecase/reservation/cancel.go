package reservation

import (
	"context"
	"time"

	"github.com/lumina-beauty/booking-api/internal/audit"
	"github.com/lumina-beauty/booking-api/internal/cache"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
)

type CancelReservation struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		avail: avail,
		audit: auditD,
	}
}

// Execute cancels a reservation and, while the reservation still points at a
// slot, gives its seat back under the same row lock used to take it.
//
// actingUserID nil means an administrator is cancelling on the client's
// behalf and the ownership check is skipped. The state machine makes the
// release idempotent: a second cancel fails with invalid_state before any
// counter is touched.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
	actingUserID *uint,
) error {

	var auditUserID *uint

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		res, err := tx.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if actingUserID != nil && res.UserID != *actingUserID {
			return httperr.ErrForbidden("reservation belongs to another user")
		}

		next, err := domain.Transition(domain.Status(res.Status), domain.StatusCancelled)
		if err != nil {
			return err
		}

		now := time.Now()
		res.Status = string(next)
		res.CancelledAt = &now

		if res.SlotID != nil {
			slot, err := tx.GetSlotForUpdate(ctx, *res.SlotID)
			if err != nil {
				return err
			}
			if err := domain.ReleaseSeat(slot); err != nil {
				return err
			}
			if err := tx.SaveSlot(ctx, slot); err != nil {
				return err
			}
			uc.avail.Invalidate(ctx, slot.ServiceID, slot.Date)
		}

		if err := tx.SaveReservation(ctx, res); err != nil {
			return err
		}

		auditUserID = &res.UserID
		return nil
	})

	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   auditUserID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &reservationID,
	})

	return nil
}
