package reservation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateManualReservationInput struct {
	Email string
	Name  string
	Phone string

	SlotID uint
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// CreateManualReservation is the front-desk path: an administrator books on
// behalf of a walk-in or phone client identified only by email. An unknown
// email auto-registers a client account with a random throwaway password,
// so the person can claim it later through a reset. A known email books
// against the existing account untouched.
type CreateManualReservation struct {
	repo   domain.Repository
	create *CreateReservation
}

func NewCreateManualReservation(
	repo domain.Repository,
	create *CreateReservation,
) *CreateManualReservation {
	return &CreateManualReservation{
		repo:   repo,
		create: create,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateManualReservation) Execute(
	ctx context.Context,
	in CreateManualReservationInput,
) (*models.Reservation, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidInput, "client email is required",
		)
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		// existing account, leave name/phone as they are
	case httperr.IsNotFound(err):
		if user, err = uc.registerClient(ctx, email, in.Name, in.Phone); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return uc.create.Execute(ctx, CreateReservationInput{
		UserID: user.ID,
		SlotID: in.SlotID,
		Notes:  in.Notes,
	})
}

func (uc *CreateManualReservation) registerClient(
	ctx context.Context,
	email, name, phone string,
) (*models.User, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		local, _, _ := strings.Cut(email, "@")
		name = "Client " + local
	}

	// The account is unreachable until the client resets the password.
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(uuid.NewString()), bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         models.RoleClient,
		Active:       true,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
