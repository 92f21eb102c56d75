package services

import (
	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

// RewardAccumulator decides what a confirmed booking earns. It never writes;
// the booking repository applies the grant in the same transaction as the
// booking insert.
type RewardAccumulator struct {
	pointsPerBooking int
}

func NewRewardAccumulator(pointsPerBooking int) *RewardAccumulator {
	if pointsPerBooking < 0 {
		pointsPerBooking = 0
	}
	return &RewardAccumulator{pointsPerBooking: pointsPerBooking}
}

func (r *RewardAccumulator) GrantBookingReward(userID uuid.UUID) domain.RewardGrant {
	return domain.RewardGrant{
		UserID:   userID,
		Bookings: 1,
		Points:   r.pointsPerBooking,
	}
}

func (r *RewardAccumulator) PointsPerBooking() int {
	return r.pointsPerBooking
}
