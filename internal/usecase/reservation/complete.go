package reservation

import (
	"context"
	"time"

	"github.com/lumina-beauty/booking-api/internal/audit"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/models"
)

type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Transition(domain.Status(res.Status), domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res.Status = string(next)
	res.CompletedAt = &now

	if err := uc.repo.SaveReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &res.UserID,
		Action:   "reservation_completed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
