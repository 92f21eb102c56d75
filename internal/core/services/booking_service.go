package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateBookingRequest struct {
	VenueID  string
	Date     string
	Time     string
	Duration string
}

type CreateBookingResult struct {
	Booking *domain.Booking
	Reward  domain.RewardGrant
}

type UserBookings struct {
	Bookings []domain.Booking
	query.BookingPartition
}

type BookingService struct {
	venueRepo   ports.VenueRepository
	bookingRepo ports.BookingRepository
	rewards     *RewardAccumulator
	events      ports.EventPublisher
	now         func() time.Time
	log         logrus.FieldLogger
}

func NewBookingService(
	venueRepo ports.VenueRepository,
	bookingRepo ports.BookingRepository,
	rewards *RewardAccumulator,
	events ports.EventPublisher,
	opts ...Option,
) *BookingService {
	o := buildOptions(opts)
	return &BookingService{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		rewards:     rewards,
		events:      events,
		now:         o.now,
		log:         o.log,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, actor domain.Identity, req CreateBookingRequest) (*CreateBookingResult, error) {
	if err := domain.Authorize(actor, domain.CapBookVenues); err != nil {
		return nil, err
	}

	venueID, day, slot, err := parseBookingRequest(req)
	if err != nil {
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, domain.Internal(err)
	}

	if !venue.IsActive {
		return nil, domain.ErrVenueInactive
	}

	if venue.DeclaresSlots(day) {
		declared, ok := venue.MatchSlot(day, slot)
		if !ok {
			verr := domain.NewValidationError()
			verr.Add("time", "is not offered by this venue on "+day.String())
			return nil, verr
		}
		slot = declared
	}

	booking, err := domain.NewBooking(actor.UserID, venue, day, slot, req.Duration, s.now())
	if err != nil {
		return nil, err
	}

	live, err := s.bookingRepo.ListLiveByVenueDate(ctx, venue.ID, day)
	if err != nil {
		return nil, domain.Internal(err)
	}
	for i := range live {
		if strings.EqualFold(live[i].Time, booking.Time) {
			return nil, domain.Slot{VenueID: venue.ID, Date: day, Time: booking.Time}.Conflict()
		}
	}

	grant := s.rewards.GrantBookingReward(actor.UserID)
	if err := s.bookingRepo.Create(ctx, booking, grant); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			s.log.WithFields(logrus.Fields{
				"venue_id": venue.ID,
				"date":     day.String(),
				"time":     booking.Time,
			}).Info("slot taken by a concurrent booking")
		}
		return nil, domain.Internal(err)
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"venue_id":   venue.ID,
		"user_id":    actor.UserID,
		"points":     grant.Points,
	}).Info("booking confirmed")

	s.publish(ctx, ports.EventBookingCreated, booking)

	return &CreateBookingResult{Booking: booking, Reward: grant}, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, actor domain.Identity, bookingID string) (*domain.Booking, error) {
	if err := domain.Authorize(actor, domain.CapCancelOwnBookings); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(bookingID))
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}

	if booking.UserID != actor.UserID {
		return nil, domain.ErrNotBookingOwner
	}

	if booking.Status == domain.BookingCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, id, s.now())
	if err != nil {
		return nil, domain.Internal(err)
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": cancelled.ID,
		"venue_id":   cancelled.VenueID,
		"user_id":    actor.UserID,
	}).Info("booking cancelled")

	s.publish(ctx, ports.EventBookingCancelled, cancelled)

	return cancelled, nil
}

// ListBookingsForUser returns the actor's bookings newest first, together
// with their active/past/cancelled split as of today.
func (s *BookingService) ListBookingsForUser(ctx context.Context, actor domain.Identity) (*UserBookings, error) {
	if err := domain.Authorize(actor, domain.CapListOwnBookings); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return &UserBookings{
		Bookings:         bookings,
		BookingPartition: query.PartitionBookings(bookings, s.today()),
	}, nil
}

func (s *BookingService) ListBookingsForVenue(ctx context.Context, actor domain.Identity, venueID string) ([]domain.Booking, error) {
	if err := domain.Authorize(actor, domain.CapViewVenueBookings); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(venueID))
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}

	if venue.OwnerID != actor.UserID {
		return nil, domain.ErrNotVenueOwner
	}

	bookings, err := s.bookingRepo.ListByVenue(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

func (s *BookingService) today() domain.Date {
	return domain.DateOf(s.now())
}

func (s *BookingService) publish(ctx context.Context, routingKey string, booking *domain.Booking) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishBooking(ctx, routingKey, booking); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"event":      routingKey,
		}).Warn("failed to publish booking event")
	}
}

func parseBookingRequest(req CreateBookingRequest) (uuid.UUID, domain.Date, string, error) {
	verr := domain.NewValidationError()

	var venueID uuid.UUID
	if strings.TrimSpace(req.VenueID) == "" {
		verr.Add("venueId", "is required")
	} else if id, err := uuid.Parse(strings.TrimSpace(req.VenueID)); err != nil {
		verr.Add("venueId", "is not a valid id")
	} else {
		venueID = id
	}

	var day domain.Date
	if strings.TrimSpace(req.Date) == "" {
		verr.Add("date", "is required")
	} else if d, err := domain.ParseDate(req.Date); err != nil {
		verr.Add("date", "must be formatted as YYYY-MM-DD")
	} else {
		day = d
	}

	slot := domain.NormalizeSlotLabel(req.Time)
	if slot == "" {
		verr.Add("time", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return uuid.Nil, domain.Date{}, "", err
	}
	return venueID, day, slot, nil
}
