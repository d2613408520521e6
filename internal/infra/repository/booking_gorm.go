package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// Transaction binds a child repository to one gorm transaction. Row locks
// taken through GetSlotForUpdate live until the callback returns.
func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func notFound(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(resource, id)
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, notFound(err, "user", email)
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err, "service", id)
	}
	return &svc, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&slot, id).Error; err != nil {
		return nil, notFound(err, "slot", id)
	}
	return &slot, nil
}

func (r *BookingGormRepository) GetSlotForUpdate(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		return nil, notFound(err, "slot", id)
	}

	// Preload would widen the FOR UPDATE; fetch the service separately.
	if err := r.db.WithContext(ctx).
		First(&slot.Service, slot.ServiceID).Error; err != nil {
		return nil, notFound(err, "service", slot.ServiceID)
	}

	return &slot, nil
}

func (r *BookingGormRepository) CreateSlot(
	ctx context.Context,
	s *models.Slot,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *BookingGormRepository) SaveSlot(
	ctx context.Context,
	s *models.Slot,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *BookingGormRepository) DeleteSlot(
	ctx context.Context,
	s *models.Slot,
) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

func (r *BookingGormRepository) SlotKeyTaken(
	ctx context.Context,
	serviceID uint,
	date string,
	start string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("service_id = ? AND date = ? AND start_time = ?", serviceID, date, start)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListSlots(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("service_id = ? AND date = ?", serviceID, date).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("service_id = ? AND date = ? AND remaining > 0", serviceID, date).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListSlotsInRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListSlotsByService(
	ctx context.Context,
	serviceID uint,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("service_id = ?", serviceID).
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *BookingGormRepository) SaveReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&res, id).Error; err != nil {
		return nil, notFound(err, "reservation", id)
	}
	return &res, nil
}

func (r *BookingGormRepository) HasActiveReservationOnSlot(
	ctx context.Context,
	userID uint,
	slotID uint,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"user_id = ? AND slot_id = ? AND status IN ?",
			userID, slotID, []string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) HasScheduleOverlap(
	ctx context.Context,
	userID uint,
	date string,
	start string,
	end string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"user_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			userID, date,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListUserReservations(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListReservationsForDate(
	ctx context.Context,
	date string,
	activeOnly bool,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("date = ?", date)

	if activeOnly {
		q = q.Where(
			"status IN ?",
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		)
	}

	var out []models.Reservation
	if err := q.
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListAllReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Order("date DESC, start_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
