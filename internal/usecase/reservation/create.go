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

type CreateReservationInput struct {
	UserID uint
	SlotID uint
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	hours domain.Hours
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	hours domain.Hours,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		hours: hours,
		avail: avail,
		audit: auditD,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books one seat on a slot for a user. The slot row is locked before
// any check runs and stays locked until the transaction ends, so two requests
// racing for the last seat are fully serialized: the loser re-reads
// remaining=0 and fails with no_capacity instead of overselling.
//
// Check order is fixed and short-circuiting, so the reported error is always
// the first violated rule: hours, capacity, duplicate, overlap.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	var created *models.Reservation

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		user, err := tx.GetUser(ctx, in.UserID)
		if err != nil {
			return err
		}

		slot, err := tx.GetSlotForUpdate(ctx, in.SlotID)
		if err != nil {
			return err
		}

		if err := uc.hours.CheckWindow(slot.StartTime, slot.EndTime); err != nil {
			return err
		}

		if !domain.HasAvailability(slot) {
			return httperr.ErrBusinessf(
				httperr.CodeNoCapacity,
				"no seats left for %s on %s at %s",
				slot.Service.Name, slot.Date, slot.StartTime,
			)
		}

		dup, err := tx.HasActiveReservationOnSlot(ctx, user.ID, slot.ID, 0)
		if err != nil {
			return err
		}
		if dup {
			return httperr.ErrBusinessf(
				httperr.CodeDuplicateBooking,
				"you already hold an active reservation on this slot",
			)
		}

		overlap, err := tx.HasScheduleOverlap(
			ctx, user.ID, slot.Date, slot.StartTime, slot.EndTime, 0,
		)
		if err != nil {
			return err
		}
		if overlap {
			return httperr.ErrBusinessf(
				httperr.CodeScheduleConflict,
				"you already have an active reservation overlapping %s-%s on %s",
				slot.StartTime, slot.EndTime, slot.Date,
			)
		}

		if err := domain.TakeSeat(slot); err != nil {
			return err
		}
		if err := tx.SaveSlot(ctx, slot); err != nil {
			return err
		}

		price := slot.Service.Price
		slotID := slot.ID

		res := &models.Reservation{
			UserID:     user.ID,
			ServiceID:  slot.ServiceID,
			SlotID:     &slotID,
			Date:       slot.Date,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			Status:     string(domain.StatusPending),
			FinalPrice: &price,
			Notes:      in.Notes,
		}

		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		res.User = *user
		res.Service = slot.Service
		created = res

		uc.avail.Invalidate(ctx, slot.ServiceID, slot.Date)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &created.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &created.ID,
	})

	return created, nil
}
