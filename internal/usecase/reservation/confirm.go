package reservation

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/audit"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/models"
)

type ConfirmReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmReservation(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Transition(domain.Status(res.Status), domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	res.Status = string(next)

	if err := uc.repo.SaveReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &res.UserID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
