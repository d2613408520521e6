package slot

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/cache"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/dto"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/timeutil"
)

type ListSlots struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
}

func NewListSlots(repo domain.Repository, avail *cache.AvailabilityCache) *ListSlots {
	return &ListSlots{repo: repo, avail: avail}
}

// Available is the public availability query: every slot for a service on a
// date that still has free seats, ordered by start time.
//
// Results pass through a short-TTL cache. The cache is advisory only; every
// booking still re-checks under the row lock, so a stale entry can at worst
// show a seat that is gone by the time someone tries to book it.
func (uc *ListSlots) Available(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]dto.SlotDTO, error) {

	date, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", date,
		)
	}

	if cached, ok := uc.avail.Get(ctx, serviceID, date); ok {
		return dto.NewSlotDTOs(cached), nil
	}

	slots, err := uc.repo.ListAvailableSlots(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}

	uc.avail.Set(ctx, serviceID, date, slots)
	return dto.NewSlotDTOs(slots), nil
}

// ForDay lists every slot of a service on a date, full ones included. Admin
// calendar view, bypasses the cache.
func (uc *ListSlots) ForDay(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]dto.SlotDTO, error) {

	date, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", date,
		)
	}

	slots, err := uc.repo.ListSlots(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}
	return dto.NewSlotDTOs(slots), nil
}

// ByService lists the full calendar of one service across all dates.
func (uc *ListSlots) ByService(
	ctx context.Context,
	serviceID uint,
) ([]dto.SlotDTO, error) {

	slots, err := uc.repo.ListSlotsByService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return dto.NewSlotDTOs(slots), nil
}

// InRange lists every slot between two dates inclusive, across services.
func (uc *ListSlots) InRange(
	ctx context.Context,
	from, to string,
) ([]dto.SlotDTO, error) {

	from, err := timeutil.ParseDate(from)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", from,
		)
	}
	to, err = timeutil.ParseDate(to)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "invalid date %q, want YYYY-MM-DD", to,
		)
	}
	if from > to {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "range start %s is after its end %s", from, to,
		)
	}

	slots, err := uc.repo.ListSlotsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.NewSlotDTOs(slots), nil
}
