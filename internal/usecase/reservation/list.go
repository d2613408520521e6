package reservation

import (
	"context"

	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/dto"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/timeutil"
)

// ListReservations exposes the read-side views over the reservation table.
// Plain queries, no locking: these never touch seat counters.
type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Get loads one reservation. A non-nil actingUserID must match the owner;
// nil is the admin path and skips the check.
func (uc *ListReservations) Get(
	ctx context.Context,
	reservationID uint,
	actingUserID *uint,
) (dto.ReservationDTO, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return dto.ReservationDTO{}, err
	}

	if actingUserID != nil && res.UserID != *actingUserID {
		return dto.ReservationDTO{}, httperr.ErrForbidden("reservation belongs to another user")
	}

	return dto.NewReservationDTO(res), nil
}

// ForUser is the client's own history, newest first, every status included.
func (uc *ListReservations) ForUser(
	ctx context.Context,
	userID uint,
) ([]dto.ReservationDTO, error) {

	rs, err := uc.repo.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewReservationDTOs(rs), nil
}

// ForToday is the front-desk agenda: active reservations for the current
// date, ordered by start time.
func (uc *ListReservations) ForToday(
	ctx context.Context,
) ([]dto.ReservationDTO, error) {

	rs, err := uc.repo.ListReservationsForDate(ctx, timeutil.Today(), true)
	if err != nil {
		return nil, err
	}
	return dto.NewReservationDTOs(rs), nil
}

// All is the admin overview across users and dates.
func (uc *ListReservations) All(
	ctx context.Context,
) ([]dto.ReservationDTO, error) {

	rs, err := uc.repo.ListAllReservations(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewReservationDTOs(rs), nil
}
