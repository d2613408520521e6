package slot

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/audit"
	"github.com/lumina-beauty/booking-api/internal/cache"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
	"github.com/lumina-beauty/booking-api/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

// UpdateSlotInput carries only the fields being changed; nil leaves a field
// as it is.
type UpdateSlotInput struct {
	Date      *string
	StartTime *string
	Capacity  *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSlot struct {
	repo  domain.Repository
	hours domain.Hours
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewUpdateSlot(
	repo domain.Repository,
	hours domain.Hours,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *UpdateSlot {
	return &UpdateSlot{
		repo:  repo,
		hours: hours,
		avail: avail,
		audit: auditD,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute reshapes an existing slot under its row lock. An occupied slot can
// only have its capacity adjusted: moving it in time would silently move the
// reservations denormalized onto it. Capacity can never drop below the seats
// already claimed, and remaining is recomputed so occupied seats survive the
// change.
func (uc *UpdateSlot) Execute(
	ctx context.Context,
	slotID uint,
	in UpdateSlotInput,
) (*models.Slot, error) {

	var updated *models.Slot

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		slot, err := tx.GetSlotForUpdate(ctx, slotID)
		if err != nil {
			return err
		}

		occupied := domain.Occupied(slot)
		moving := in.Date != nil || in.StartTime != nil

		if moving && occupied > 0 {
			return httperr.ErrBusinessf(
				httperr.CodeSlotOccupied,
				"slot %d has %d active reservations, only capacity can change",
				slot.ID, occupied,
			)
		}

		oldDate := slot.Date

		if in.Date != nil {
			date, err := timeutil.ParseDate(*in.Date)
			if err != nil {
				return httperr.ErrBusinessf(
					httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", *in.Date,
				)
			}
			slot.Date = date
		}

		if in.StartTime != nil {
			start, err := timeutil.ParseClock(*in.StartTime)
			if err != nil {
				return httperr.ErrBusinessf(
					httperr.CodeInvalidInput, "invalid start time %q, want HH:MM", *in.StartTime,
				)
			}

			end, err := timeutil.AddToClock(start, slot.Service.DurationMin)
			if err != nil {
				return httperr.ErrBusinessf(
					httperr.CodeOutOfHours,
					"slot starting at %s would cross midnight", start,
				)
			}

			slot.StartTime = start
			slot.EndTime = end
		}

		if err := uc.hours.CheckWindow(slot.StartTime, slot.EndTime); err != nil {
			return err
		}

		taken, err := tx.SlotKeyTaken(
			ctx, slot.ServiceID, slot.Date, slot.StartTime, slot.ID,
		)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusinessf(
				httperr.CodeDuplicateSlot,
				"another slot already exists on %s at %s", slot.Date, slot.StartTime,
			)
		}

		if in.Capacity != nil {
			if *in.Capacity < occupied {
				return httperr.ErrBusinessf(
					httperr.CodeSlotOccupied,
					"capacity %d is below the %d seats already claimed",
					*in.Capacity, occupied,
				)
			}
			slot.Capacity = *in.Capacity
			slot.Remaining = *in.Capacity - occupied
		}

		if err := tx.SaveSlot(ctx, slot); err != nil {
			return err
		}

		updated = slot

		uc.avail.Invalidate(ctx, slot.ServiceID, oldDate)
		if slot.Date != oldDate {
			uc.avail.Invalidate(ctx, slot.ServiceID, slot.Date)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_updated",
		Entity:   "slot",
		EntityID: &updated.ID,
	})

	return updated, nil
}
