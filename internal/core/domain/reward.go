package domain

import "github.com/google/uuid"

const DefaultPointsPerBooking = 10

// RewardGrant is applied to a user's counters in the same write that
// confirms a booking.
type RewardGrant struct {
	UserID   uuid.UUID
	Bookings int
	Points   int
}

func (g RewardGrant) IsZero() bool {
	return g.Bookings == 0 && g.Points == 0
}
