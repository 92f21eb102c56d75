package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrSlotConflict     = errors.New("slot already booked")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal error")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrVenueNotFound   = fmt.Errorf("venue %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)

	ErrEmailTaken               = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrVenueInactive            = fmt.Errorf("%w: venue is not accepting bookings", ErrValidation)
	ErrInvalidCredentials       = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	ErrNotBookingOwner          = fmt.Errorf("%w: you can only cancel your own bookings", ErrForbidden)
	ErrNotVenueOwner            = fmt.Errorf("%w: you do not own this venue", ErrForbidden)
	ErrVenueHasUpcomingBookings = fmt.Errorf("%w: venue has upcoming confirmed bookings", ErrConflict)
)

// ValidationError lists the request fields that were missing or malformed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, problem string) {
	e.Fields[field] = problem
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns nil when no field was flagged.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type SlotConflictError struct {
	VenueID string
	Date    Date
	Time    string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: venue %s on %s at %s", ErrSlotConflict, e.VenueID, e.Date, e.Time)
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }

type internalError struct {
	cause error
}

func (e *internalError) Error() string { return fmt.Sprintf("%s: %v", ErrInternal, e.cause) }

func (e *internalError) Is(target error) bool { return target == ErrInternal }

func (e *internalError) Unwrap() error { return e.cause }

// Internal marks a storage or infrastructure failure. Errors that already
// belong to the domain taxonomy pass through untouched.
func Internal(err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	return &internalError{cause: err}
}

func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrValidation, ErrNotFound, ErrForbidden, ErrSlotConflict,
		ErrAlreadyCancelled, ErrUnauthenticated, ErrConflict, ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
