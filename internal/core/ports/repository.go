package ports

import (
	"context"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// Create fails with domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone *string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
	ListActive(ctx context.Context) ([]domain.Venue, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Venue, error)
	Update(ctx context.Context, venue *domain.Venue) error
	// Delete removes the venue unless it still has confirmed bookings dated
	// on or after today, in which case domain.ErrVenueHasUpcomingBookings.
	Delete(ctx context.Context, id uuid.UUID, today domain.Date) error
}

type BookingRepository interface {
	// Create inserts a confirmed booking and applies grant to the booker's
	// counters atomically. A live booking on the same slot yields a
	// *domain.SlotConflictError and leaves the counters untouched.
	Create(ctx context.Context, booking *domain.Booking, grant domain.RewardGrant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// Cancel only succeeds on a confirmed booking; otherwise
	// domain.ErrAlreadyCancelled.
	Cancel(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error)
	ListLiveByVenueDate(ctx context.Context, venueID uuid.UUID, day domain.Date) ([]domain.Booking, error)
}
