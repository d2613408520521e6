package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ======================================================
// Error kinds
//
// The core signals failures by kind, not by HTTP status.
// Mapping to status codes happens in the handlers only.
// ======================================================

// Business rule violations: deterministic, never retried.
const (
	CodeOutOfHours       = "out_of_hours"
	CodeNoCapacity       = "no_capacity"
	CodeCapacityOverflow = "capacity_overflow"
	CodeDuplicateBooking = "duplicate_booking"
	CodeScheduleConflict = "schedule_conflict"
	CodeDuplicateSlot    = "duplicate_slot"
	CodeSlotOccupied     = "slot_occupied"
	CodeInvalidState     = "invalid_state"
	CodeInvalidInput     = "invalid_input"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ------------------------------------------------------
// Not found
// ------------------------------------------------------

type NotFoundError struct {
	Resource string
	ID       any
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Resource, e.ID)
}

func ErrNotFound(resource string, id any) error {
	return NotFoundError{Resource: resource, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ------------------------------------------------------
// Forbidden (ownership violations)
// ------------------------------------------------------

type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

func ErrForbidden(reason string) error {
	return ForbiddenError{Reason: reason}
}

func IsForbidden(err error) bool {
	var fe ForbiddenError
	return errors.As(err, &fe)
}

// ------------------------------------------------------
// Transient storage conflicts
// ------------------------------------------------------

// IsTransientConflict reports whether err is a lock-wait or serialization
// failure from postgres: safe for the caller to retry with backoff. The core
// never retries internally.
func IsTransientConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case "55P03", // lock_not_available
		"40001", // serialization_failure
		"40P01": // deadlock_detected
		return true
	}
	return false
}
