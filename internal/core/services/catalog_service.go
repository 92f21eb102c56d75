package services

import (
	"context"
	"strings"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CatalogService struct {
	venueRepo   ports.VenueRepository
	bookingRepo ports.BookingRepository
	cache       ports.VenueCache
	now         func() time.Time
	log         logrus.FieldLogger
}

func NewCatalogService(
	venueRepo ports.VenueRepository,
	bookingRepo ports.BookingRepository,
	cache ports.VenueCache,
	opts ...Option,
) *CatalogService {
	o := buildOptions(opts)
	return &CatalogService{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		now:         o.now,
		log:         o.log,
	}
}

// ListActiveVenues serves the public listing, newest first, from cache when
// possible. Cache failures degrade to a direct read.
func (s *CatalogService) ListActiveVenues(ctx context.Context) ([]domain.Venue, error) {
	if s.cache != nil {
		venues, ok, err := s.cache.GetActiveVenues(ctx)
		if err != nil {
			s.log.WithError(err).Warn("venue cache read failed")
		} else if ok {
			return venues, nil
		}
	}

	venues, err := s.venueRepo.ListActive(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if venues == nil {
		venues = []domain.Venue{}
	}

	if s.cache != nil {
		if err := s.cache.SetActiveVenues(ctx, venues); err != nil {
			s.log.WithError(err).Warn("venue cache write failed")
		}
	}
	return venues, nil
}

func (s *CatalogService) SearchVenues(ctx context.Context, filter query.VenueFilter) ([]domain.Venue, error) {
	venues, err := s.ListActiveVenues(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterVenues(venues, filter), nil
}

func (s *CatalogService) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	id, err := uuid.Parse(strings.TrimSpace(venueID))
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return venue, nil
}

func (s *CatalogService) ListOwnedVenues(ctx context.Context, actor domain.Identity) ([]domain.Venue, error) {
	if err := domain.Authorize(actor, domain.CapManageVenues); err != nil {
		return nil, err
	}

	venues, err := s.venueRepo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if venues == nil {
		venues = []domain.Venue{}
	}
	return venues, nil
}

func (s *CatalogService) CreateVenue(ctx context.Context, actor domain.Identity, fields domain.VenueFields) (*domain.Venue, error) {
	if err := domain.Authorize(actor, domain.CapManageVenues); err != nil {
		return nil, err
	}

	venue, err := domain.NewVenue(actor.UserID, fields, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, domain.Internal(err)
	}

	s.log.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"owner_id": actor.UserID,
	}).Info("venue created")

	s.invalidate(ctx)
	return venue, nil
}

func (s *CatalogService) UpdateVenue(ctx context.Context, actor domain.Identity, venueID string, patch domain.VenueFields) (*domain.Venue, error) {
	venue, err := s.ownedVenue(ctx, actor, venueID)
	if err != nil {
		return nil, err
	}

	updated := *venue
	if err := updated.Apply(patch, s.now()); err != nil {
		return nil, err
	}

	if err := s.venueRepo.Update(ctx, &updated); err != nil {
		return nil, domain.Internal(err)
	}

	s.log.WithField("venue_id", updated.ID).Info("venue updated")

	s.invalidate(ctx)
	return &updated, nil
}

func (s *CatalogService) DeleteVenue(ctx context.Context, actor domain.Identity, venueID string) error {
	venue, err := s.ownedVenue(ctx, actor, venueID)
	if err != nil {
		return err
	}

	if err := s.venueRepo.Delete(ctx, venue.ID, domain.DateOf(s.now())); err != nil {
		return domain.Internal(err)
	}

	s.log.WithField("venue_id", venue.ID).Info("venue deleted")

	s.invalidate(ctx)
	return nil
}

// VenueAvailability flags each slot the venue declares for the given day as
// free or held by a confirmed booking.
func (s *CatalogService) VenueAvailability(ctx context.Context, venueID, date string) ([]domain.SlotAvailability, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		verr := domain.NewValidationError()
		verr.Add("date", "must be formatted as YYYY-MM-DD")
		return nil, verr
	}

	venue, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	live, err := s.bookingRepo.ListLiveByVenueDate(ctx, venue.ID, day)
	if err != nil {
		return nil, domain.Internal(err)
	}

	held := make(map[string]bool, len(live))
	for _, b := range live {
		held[strings.ToLower(b.Time)] = true
	}

	declared := venue.AvailableSlots[day.String()]
	slots := make([]domain.SlotAvailability, 0, len(declared))
	for _, label := range declared {
		label = domain.NormalizeSlotLabel(label)
		slots = append(slots, domain.SlotAvailability{
			Time:      label,
			Available: !held[strings.ToLower(label)],
		})
	}
	return slots, nil
}

func (s *CatalogService) ownedVenue(ctx context.Context, actor domain.Identity, venueID string) (*domain.Venue, error) {
	if err := domain.Authorize(actor, domain.CapManageVenues); err != nil {
		return nil, err
	}

	venue, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if venue.OwnerID != actor.UserID {
		return nil, domain.ErrNotVenueOwner
	}
	return venue, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateActiveVenues(ctx); err != nil {
		s.log.WithError(err).Warn("venue cache invalidation failed")
	}
}
