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

type CreateSlotInput struct {
	ServiceID uint
	Date      string // "2006-01-02"
	StartTime string // "15:04"

	// Capacity overrides the service's default occupancy when > 0.
	Capacity int
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo  domain.Repository
	hours domain.Hours
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateSlot(
	repo domain.Repository,
	hours domain.Hours,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		hours: hours,
		avail: avail,
		audit: auditD,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute opens a bookable window for a service. The end time is derived
// from the service's duration, never supplied by the caller, so a slot
// always spans exactly one appointment. The (service, date, start) calendar
// key must be free; the same check runs again on edit, and the database
// unique index backs both.
func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	date, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", in.Date,
		)
	}

	start, err := timeutil.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid start time %q, want HH:MM", in.StartTime,
		)
	}

	var created *models.Slot

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		svc, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if !svc.Active {
			return httperr.ErrBusinessf(
				httperr.CodeInvalidInput, "service %s is inactive", svc.Name,
			)
		}

		end, err := timeutil.AddToClock(start, svc.DurationMin)
		if err != nil {
			return httperr.ErrBusinessf(
				httperr.CodeOutOfHours,
				"slot starting at %s would cross midnight", start,
			)
		}

		if err := uc.hours.CheckWindow(start, end); err != nil {
			return err
		}

		taken, err := tx.SlotKeyTaken(ctx, svc.ID, date, start, 0)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusinessf(
				httperr.CodeDuplicateSlot,
				"a slot for %s already exists on %s at %s", svc.Name, date, start,
			)
		}

		capacity := svc.MaxOccupancy
		if in.Capacity > 0 {
			capacity = in.Capacity
		}

		slot := &models.Slot{
			ServiceID: svc.ID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Capacity:  capacity,
			Remaining: capacity,
		}

		if err := tx.CreateSlot(ctx, slot); err != nil {
			return err
		}

		slot.Service = *svc
		created = slot

		uc.avail.Invalidate(ctx, svc.ID, date)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &created.ID,
	})

	return created, nil
}
