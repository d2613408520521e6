package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// BookingMemoryRepository is an in-memory domain.Repository for tests. One
// mutex plays the role of the database's row locks: transactions run
// serialized, and a failed transaction restores the pre-transaction snapshot
// so rollback semantics hold too.
type BookingMemoryRepository struct {
	mu    sync.Mutex
	state *memoryState
}

type memoryState struct {
	users        map[uint]models.User
	services     map[uint]models.Service
	slots        map[uint]models.Slot
	reservations map[uint]models.Reservation

	nextUserID uint
	nextSlotID uint
	nextResID  uint
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		state: &memoryState{
			users:        map[uint]models.User{},
			services:     map[uint]models.Service{},
			slots:        map[uint]models.Slot{},
			reservations: map[uint]models.Reservation{},
			nextUserID:   1,
			nextSlotID:   1,
			nextResID:    1,
		},
	}
}

// --------------------------------------------------
// Seeding helpers
// --------------------------------------------------

func (r *BookingMemoryRepository) SeedUser(u models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		u.ID = r.state.nextUserID
		r.state.nextUserID++
	}
	r.state.users[u.ID] = u
	return u
}

func (r *BookingMemoryRepository) SeedService(s models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = uint(len(r.state.services) + 1)
	}
	r.state.services[s.ID] = s
	return s
}

func (r *BookingMemoryRepository) SeedSlot(s models.Slot) models.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.state.nextSlotID
		r.state.nextSlotID++
	}
	r.state.slots[s.ID] = s
	return s
}

// SlotByID reads the stored slot outside any transaction.
func (r *BookingMemoryRepository) SlotByID(id uint) (models.Slot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.state.slots[id]
	return s, ok
}

// ReservationByID reads the stored reservation outside any transaction.
func (r *BookingMemoryRepository) ReservationByID(id uint) (models.Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.state.reservations[id]
	return res, ok
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (s *memoryState) clone() *memoryState {
	out := &memoryState{
		users:        make(map[uint]models.User, len(s.users)),
		services:     make(map[uint]models.Service, len(s.services)),
		slots:        make(map[uint]models.Slot, len(s.slots)),
		reservations: make(map[uint]models.Reservation, len(s.reservations)),
		nextUserID:   s.nextUserID,
		nextSlotID:   s.nextSlotID,
		nextResID:    s.nextResID,
	}
	for k, v := range s.users {
		out.users[k] = v
	}
	for k, v := range s.services {
		out.services[k] = v
	}
	for k, v := range s.slots {
		out.slots[k] = v
	}
	for k, v := range s.reservations {
		out.reservations[k] = v
	}
	return out
}

func (r *BookingMemoryRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.state.clone()
	if err := fn(&memoryTx{state: r.state}); err != nil {
		r.state = snapshot
		return err
	}
	return nil
}

// memoryTx is the view handed to transaction callbacks: same state, no
// locking, since the outer mutex is already held.
type memoryTx struct {
	state *memoryState
}

// Nested transactions just run in the enclosing one.
func (t *memoryTx) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return fn(t)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (t *memoryTx) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := t.state.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user", id)
	}
	return &u, nil
}

func (t *memoryTx) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range t.state.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound("user", email)
}

func (t *memoryTx) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = t.state.nextUserID
	t.state.nextUserID++
	t.state.users[u.ID] = *u
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (t *memoryTx) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := t.state.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service", id)
	}
	return &s, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (t *memoryTx) getSlot(id uint) (*models.Slot, error) {
	s, ok := t.state.slots[id]
	if !ok {
		return nil, httperr.ErrNotFound("slot", id)
	}
	if svc, ok := t.state.services[s.ServiceID]; ok {
		s.Service = svc
	}
	return &s, nil
}

func (t *memoryTx) GetSlot(ctx context.Context, id uint) (*models.Slot, error) {
	return t.getSlot(id)
}

func (t *memoryTx) GetSlotForUpdate(ctx context.Context, id uint) (*models.Slot, error) {
	return t.getSlot(id)
}

func (t *memoryTx) CreateSlot(ctx context.Context, s *models.Slot) error {
	s.ID = t.state.nextSlotID
	t.state.nextSlotID++
	t.state.slots[s.ID] = *s
	return nil
}

func (t *memoryTx) SaveSlot(ctx context.Context, s *models.Slot) error {
	t.state.slots[s.ID] = *s
	return nil
}

func (t *memoryTx) DeleteSlot(ctx context.Context, s *models.Slot) error {
	delete(t.state.slots, s.ID)
	return nil
}

func (t *memoryTx) SlotKeyTaken(
	ctx context.Context,
	serviceID uint,
	date, start string,
	excludeID uint,
) (bool, error) {
	for _, s := range t.state.slots {
		if s.ID == excludeID {
			continue
		}
		if s.ServiceID == serviceID && s.Date == date && s.StartTime == start {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) listSlots(match func(models.Slot) bool) []models.Slot {
	var out []models.Slot
	for _, s := range t.state.slots {
		if match(s) {
			if svc, ok := t.state.services[s.ServiceID]; ok {
				s.Service = svc
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (t *memoryTx) ListSlots(ctx context.Context, serviceID uint, date string) ([]models.Slot, error) {
	return t.listSlots(func(s models.Slot) bool {
		return s.ServiceID == serviceID && s.Date == date
	}), nil
}

func (t *memoryTx) ListAvailableSlots(ctx context.Context, serviceID uint, date string) ([]models.Slot, error) {
	return t.listSlots(func(s models.Slot) bool {
		return s.ServiceID == serviceID && s.Date == date && s.Remaining > 0
	}), nil
}

func (t *memoryTx) ListSlotsInRange(ctx context.Context, from, to string) ([]models.Slot, error) {
	return t.listSlots(func(s models.Slot) bool {
		return s.Date >= from && s.Date <= to
	}), nil
}

func (t *memoryTx) ListSlotsByService(ctx context.Context, serviceID uint) ([]models.Slot, error) {
	return t.listSlots(func(s models.Slot) bool {
		return s.ServiceID == serviceID
	}), nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (t *memoryTx) CreateReservation(ctx context.Context, res *models.Reservation) error {
	res.ID = t.state.nextResID
	t.state.nextResID++
	t.state.reservations[res.ID] = *res
	return nil
}

func (t *memoryTx) SaveReservation(ctx context.Context, res *models.Reservation) error {
	t.state.reservations[res.ID] = *res
	return nil
}

func (t *memoryTx) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	res, ok := t.state.reservations[id]
	if !ok {
		return nil, httperr.ErrNotFound("reservation", id)
	}
	if u, ok := t.state.users[res.UserID]; ok {
		res.User = u
	}
	if svc, ok := t.state.services[res.ServiceID]; ok {
		res.Service = svc
	}
	return &res, nil
}

func (t *memoryTx) HasActiveReservationOnSlot(
	ctx context.Context,
	userID, slotID, excludeID uint,
) (bool, error) {
	for _, res := range t.state.reservations {
		if res.ID == excludeID {
			continue
		}
		if res.UserID != userID || res.SlotID == nil || *res.SlotID != slotID {
			continue
		}
		if domain.IsActive(domain.Status(res.Status)) {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) HasScheduleOverlap(
	ctx context.Context,
	userID uint,
	date, start, end string,
	excludeID uint,
) (bool, error) {
	for _, res := range t.state.reservations {
		if res.ID == excludeID {
			continue
		}
		if res.UserID != userID || res.Date != date {
			continue
		}
		if !domain.IsActive(domain.Status(res.Status)) {
			continue
		}
		if domain.Overlaps(res.StartTime, res.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) listReservations(match func(models.Reservation) bool) []models.Reservation {
	var out []models.Reservation
	for _, res := range t.state.reservations {
		if match(res) {
			if u, ok := t.state.users[res.UserID]; ok {
				res.User = u
			}
			if svc, ok := t.state.services[res.ServiceID]; ok {
				res.Service = svc
			}
			out = append(out, res)
		}
	}
	return out
}

func (t *memoryTx) ListUserReservations(ctx context.Context, userID uint) ([]models.Reservation, error) {
	out := t.listReservations(func(res models.Reservation) bool {
		return res.UserID == userID
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

func (t *memoryTx) ListReservationsForDate(
	ctx context.Context,
	date string,
	activeOnly bool,
) ([]models.Reservation, error) {
	out := t.listReservations(func(res models.Reservation) bool {
		if res.Date != date {
			return false
		}
		if activeOnly && !domain.IsActive(domain.Status(res.Status)) {
			return false
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (t *memoryTx) ListAllReservations(ctx context.Context) ([]models.Reservation, error) {
	out := t.listReservations(func(models.Reservation) bool { return true })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

// --------------------------------------------------
// Non-transactional access: each call is its own tiny transaction.
// --------------------------------------------------

func (r *BookingMemoryRepository) run(fn func(tx *memoryTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&memoryTx{state: r.state})
}

func (r *BookingMemoryRepository) GetUser(ctx context.Context, id uint) (out *models.User, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetUser(ctx, id); return err })
	return
}

func (r *BookingMemoryRepository) GetUserByEmail(ctx context.Context, email string) (out *models.User, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetUserByEmail(ctx, email); return err })
	return
}

func (r *BookingMemoryRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateUser(ctx, u) })
}

func (r *BookingMemoryRepository) GetService(ctx context.Context, id uint) (out *models.Service, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetService(ctx, id); return err })
	return
}

func (r *BookingMemoryRepository) GetSlot(ctx context.Context, id uint) (out *models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetSlot(ctx, id); return err })
	return
}

func (r *BookingMemoryRepository) GetSlotForUpdate(ctx context.Context, id uint) (out *models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetSlotForUpdate(ctx, id); return err })
	return
}

func (r *BookingMemoryRepository) CreateSlot(ctx context.Context, s *models.Slot) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateSlot(ctx, s) })
}

func (r *BookingMemoryRepository) SaveSlot(ctx context.Context, s *models.Slot) error {
	return r.run(func(tx *memoryTx) error { return tx.SaveSlot(ctx, s) })
}

func (r *BookingMemoryRepository) DeleteSlot(ctx context.Context, s *models.Slot) error {
	return r.run(func(tx *memoryTx) error { return tx.DeleteSlot(ctx, s) })
}

func (r *BookingMemoryRepository) SlotKeyTaken(ctx context.Context, serviceID uint, date, start string, excludeID uint) (out bool, err error) {
	err = r.run(func(tx *memoryTx) error {
		out, err = tx.SlotKeyTaken(ctx, serviceID, date, start, excludeID)
		return err
	})
	return
}

func (r *BookingMemoryRepository) ListSlots(ctx context.Context, serviceID uint, date string) (out []models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListSlots(ctx, serviceID, date); return err })
	return
}

func (r *BookingMemoryRepository) ListAvailableSlots(ctx context.Context, serviceID uint, date string) (out []models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListAvailableSlots(ctx, serviceID, date); return err })
	return
}

func (r *BookingMemoryRepository) ListSlotsInRange(ctx context.Context, from, to string) (out []models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListSlotsInRange(ctx, from, to); return err })
	return
}

func (r *BookingMemoryRepository) ListSlotsByService(ctx context.Context, serviceID uint) (out []models.Slot, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListSlotsByService(ctx, serviceID); return err })
	return
}

func (r *BookingMemoryRepository) CreateReservation(ctx context.Context, res *models.Reservation) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateReservation(ctx, res) })
}

func (r *BookingMemoryRepository) SaveReservation(ctx context.Context, res *models.Reservation) error {
	return r.run(func(tx *memoryTx) error { return tx.SaveReservation(ctx, res) })
}

func (r *BookingMemoryRepository) GetReservation(ctx context.Context, id uint) (out *models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.GetReservation(ctx, id); return err })
	return
}

func (r *BookingMemoryRepository) HasActiveReservationOnSlot(ctx context.Context, userID, slotID, excludeID uint) (out bool, err error) {
	err = r.run(func(tx *memoryTx) error {
		out, err = tx.HasActiveReservationOnSlot(ctx, userID, slotID, excludeID)
		return err
	})
	return
}

func (r *BookingMemoryRepository) HasScheduleOverlap(ctx context.Context, userID uint, date, start, end string, excludeID uint) (out bool, err error) {
	err = r.run(func(tx *memoryTx) error {
		out, err = tx.HasScheduleOverlap(ctx, userID, date, start, end, excludeID)
		return err
	})
	return
}

func (r *BookingMemoryRepository) ListUserReservations(ctx context.Context, userID uint) (out []models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListUserReservations(ctx, userID); return err })
	return
}

func (r *BookingMemoryRepository) ListReservationsForDate(ctx context.Context, date string, activeOnly bool) (out []models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error {
		out, err = tx.ListReservationsForDate(ctx, date, activeOnly)
		return err
	})
	return
}

func (r *BookingMemoryRepository) ListAllReservations(ctx context.Context) (out []models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error { out, err = tx.ListAllReservations(ctx); return err })
	return
}

// Compile-time checks
var (
	_ domain.Repository = (*BookingMemoryRepository)(nil)
	_ domain.Repository = (*memoryTx)(nil)
)
