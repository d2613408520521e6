package slot

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/audit"
	"github.com/lumina-beauty/booking-api/internal/cache"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
)

type DeleteSlot struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	avail *cache.AvailabilityCache,
	auditD *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		avail: avail,
		audit: auditD,
	}
}

// Execute removes a slot that has no claimed seats. The row lock guarantees
// no booking lands between the occupancy check and the delete.
func (uc *DeleteSlot) Execute(ctx context.Context, slotID uint) error {

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		slot, err := tx.GetSlotForUpdate(ctx, slotID)
		if err != nil {
			return err
		}

		if err := domain.CanDeleteSlot(slot); err != nil {
			return err
		}

		if err := tx.DeleteSlot(ctx, slot); err != nil {
			return err
		}

		uc.avail.Invalidate(ctx, slot.ServiceID, slot.Date)
		return nil
	})

	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &slotID,
	})

	return nil
}
