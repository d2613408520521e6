package booking

import (
	"context"

	"github.com/lumina-beauty/booking-api/internal/models"
)

// Repository is the persistence contract for the booking core. Lookups that
// miss return httperr.NotFoundError, never a bare driver error.
type Repository interface {
	// Transaction runs fn against a repository bound to one atomic unit of
	// work: every row lock taken inside is held until fn returns, and either
	// every write commits or none does.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Users --------
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	// -------- Services --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Slots --------
	GetSlot(ctx context.Context, id uint) (*models.Slot, error)

	// GetSlotForUpdate loads the slot under a row-level exclusive lock,
	// serializing concurrent acquisitions of the same slot for the duration
	// of the enclosing Transaction. Only meaningful inside one.
	GetSlotForUpdate(ctx context.Context, id uint) (*models.Slot, error)

	CreateSlot(ctx context.Context, s *models.Slot) error
	SaveSlot(ctx context.Context, s *models.Slot) error
	DeleteSlot(ctx context.Context, s *models.Slot) error

	// SlotKeyTaken reports whether another slot already occupies the
	// (service, date, start) calendar key. excludeID skips the slot being
	// edited; zero excludes nothing.
	SlotKeyTaken(ctx context.Context, serviceID uint, date, start string, excludeID uint) (bool, error)

	ListSlots(ctx context.Context, serviceID uint, date string) ([]models.Slot, error)
	ListAvailableSlots(ctx context.Context, serviceID uint, date string) ([]models.Slot, error)
	ListSlotsInRange(ctx context.Context, from, to string) ([]models.Slot, error)
	ListSlotsByService(ctx context.Context, serviceID uint) ([]models.Slot, error)

	// -------- Reservations --------
	CreateReservation(ctx context.Context, r *models.Reservation) error
	SaveReservation(ctx context.Context, r *models.Reservation) error
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	// HasActiveReservationOnSlot: same user, same exact slot, pending or
	// confirmed. excludeID as in SlotKeyTaken.
	HasActiveReservationOnSlot(ctx context.Context, userID, slotID, excludeID uint) (bool, error)

	// HasScheduleOverlap: an active reservation of the user on date whose
	// [start, end) intersects the given window (half-open).
	HasScheduleOverlap(ctx context.Context, userID uint, date, start, end string, excludeID uint) (bool, error)

	ListUserReservations(ctx context.Context, userID uint) ([]models.Reservation, error)
	ListReservationsForDate(ctx context.Context, date string, activeOnly bool) ([]models.Reservation, error)
	ListAllReservations(ctx context.Context) ([]models.Reservation, error)
}
