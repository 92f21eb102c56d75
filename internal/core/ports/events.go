package ports

import (
	"context"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type EventPublisher interface {
	PublishBooking(ctx context.Context, routingKey string, booking *domain.Booking) error
}
