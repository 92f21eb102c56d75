package memory

import (
	"context"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type VenueRepository struct {
	s *Store
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v := copyVenue(venue)
	r.s.venues[v.ID] = &v
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	out := r.withOwner(v)
	return &out, nil
}

func (r *VenueRepository) ListActive(ctx context.Context) ([]domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Venue, 0, len(r.s.venues))
	for _, v := range r.s.venues {
		if v.IsActive {
			out = append(out, r.withOwner(v))
		}
	}
	sortVenuesNewestFirst(out)
	return out, nil
}

func (r *VenueRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Venue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Venue, 0)
	for _, v := range r.s.venues {
		if v.OwnerID == ownerID {
			out = append(out, copyVenue(v))
		}
	}
	sortVenuesNewestFirst(out)
	return out, nil
}

func (r *VenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.venues[venue.ID]; !ok {
		return domain.ErrVenueNotFound
	}
	v := copyVenue(venue)
	r.s.venues[v.ID] = &v
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uuid.UUID, today domain.Date) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.venues[id]; !ok {
		return domain.ErrVenueNotFound
	}
	for slot := range r.s.live {
		if slot.VenueID == id && !slot.Date.Before(today) {
			return domain.ErrVenueHasUpcomingBookings
		}
	}
	delete(r.s.venues, id)
	return nil
}

// withOwner must be called with the store lock held.
func (r *VenueRepository) withOwner(v *domain.Venue) domain.Venue {
	out := copyVenue(v)
	if owner, ok := r.s.users[v.OwnerID]; ok {
		out.Owner = &domain.OwnerSummary{ID: owner.ID, Name: owner.Name, Phone: owner.Phone}
	}
	return out
}
