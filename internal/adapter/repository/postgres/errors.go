package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"

	liveSlotIndex  = "ux_bookings_live_slot"
	userEmailIndex = "ux_users_email"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.Constraint == "" || pgErr.Constraint == constraint
}
