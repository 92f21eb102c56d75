package memory

import (
	"context"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking, grant domain.RewardGrant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.venues[booking.VenueID]; !ok {
		return domain.ErrVenueNotFound
	}

	slot := slotOf(booking)
	if _, held := r.s.live[slot]; held {
		return domain.Slot{VenueID: booking.VenueID, Date: booking.Date, Time: booking.Time}.Conflict()
	}

	user, ok := r.s.users[grant.UserID]
	if !grant.IsZero() && !ok {
		return domain.ErrUserNotFound
	}

	b := copyBooking(booking)
	r.s.bookings[b.ID] = &b
	r.s.live[slot] = b.ID

	if ok {
		user.TotalBookings += grant.Bookings
		user.RewardPoints += grant.Points
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	out := copyBooking(b)
	return &out, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if err := b.Cancel(at); err != nil {
		return nil, err
	}
	delete(r.s.live, slotOf(b))

	out := copyBooking(b)
	return &out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Booking, 0)
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			out = append(out, copyBooking(b))
		}
	}
	sortBookingsNewestFirst(out)
	return out, nil
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Booking, 0)
	for _, b := range r.s.bookings {
		if b.VenueID != venueID {
			continue
		}
		c := copyBooking(b)
		if u, ok := r.s.users[b.UserID]; ok {
			c.Customer = &domain.CustomerSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
		}
		out = append(out, c)
	}
	sortBookingsNewestFirst(out)
	return out, nil
}

func (r *BookingRepository) ListLiveByVenueDate(ctx context.Context, venueID uuid.UUID, day domain.Date) ([]domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Booking, 0)
	for slot, id := range r.s.live {
		if slot.VenueID == venueID && slot.Date == day {
			out = append(out, copyBooking(r.s.bookings[id]))
		}
	}
	return out, nil
}
