package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/CodyBrat/PlayNxt/internal/core/ports/mocks"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type bookingFixture struct {
	venues   *mocks.VenueRepository
	bookings *mocks.BookingRepository
	events   *mocks.EventPublisher
	hook     *test.Hook
	svc      *services.BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	logger, hook := test.NewNullLogger()
	f := &bookingFixture{
		venues:   mocks.NewVenueRepository(t),
		bookings: mocks.NewBookingRepository(t),
		events:   mocks.NewEventPublisher(t),
		hook:     hook,
	}
	f.svc = services.NewBookingService(
		f.venues, f.bookings, services.NewRewardAccumulator(10), f.events,
		services.WithClock(clock), services.WithLogger(logger),
	)
	return f
}

func customer() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Role: domain.RoleCustomer}
}

func owner() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Role: domain.RoleVenueOwner}
}

func activeVenue(ownerID uuid.UUID) *domain.Venue {
	return &domain.Venue{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Goal Arena",
		Image:     "https://img.example/goal.jpg",
		Sport:     "Football",
		Price:     600,
		PriceUnit: "60 minutes",
		IsActive:  true,
		AvailableSlots: map[string][]string{
			"2025-03-10": {"6:00am - 7:00am", "11:00am - 12:30pm"},
		},
	}
}

func TestCreateBooking_Success(t *testing.T) {
	f := newBookingFixture(t)
	actor := customer()
	venue := activeVenue(uuid.New())

	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
	f.bookings.On("ListLiveByVenueDate", mock.Anything, venue.ID, mock.AnythingOfType("domain.Date")).
		Return([]domain.Booking{}, nil)
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking"), domain.RewardGrant{UserID: actor.UserID, Bookings: 1, Points: 10}).
		Return(nil)
	f.events.On("PublishBooking", mock.Anything, ports.EventBookingCreated, mock.AnythingOfType("*domain.Booking")).Return(nil)

	res, err := f.svc.CreateBooking(context.Background(), actor, services.CreateBookingRequest{
		VenueID: venue.ID.String(),
		Date:    "2025-03-10",
		Time:    "11:00AM  - 12:30PM",
		// price is not part of the request; it always comes from the venue
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, res.Booking.Status)
	assert.Equal(t, 600.0, res.Booking.Price)
	assert.Equal(t, "Goal Arena", res.Booking.VenueName)
	assert.Equal(t, venue.Image, res.Booking.VenueImage)
	assert.Equal(t, "11:00am - 12:30pm", res.Booking.Time, "stored under the venue's spelling")
	assert.Equal(t, "60 minutes", res.Booking.Duration)
	assert.Equal(t, fixedNow, res.Booking.CreatedAt)
	assert.Equal(t, 10, res.Reward.Points)

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "booking confirmed", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
}

func TestCreateBooking_VenueOwnerForbidden(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), owner(), services.CreateBookingRequest{
		VenueID: uuid.NewString(),
		Date:    "2025-03-10",
		Time:    "6:00am - 7:00am",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.venues.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		req    services.CreateBookingRequest
		fields []string
	}{
		{"everything missing", services.CreateBookingRequest{}, []string{"venueId", "date", "time"}},
		{"bad venue id", services.CreateBookingRequest{VenueID: "v1", Date: "2025-03-10", Time: "6am"}, []string{"venueId"}},
		{"bad date", services.CreateBookingRequest{VenueID: uuid.NewString(), Date: "10/03/2025", Time: "6am"}, []string{"date"}},
		{"blank time", services.CreateBookingRequest{VenueID: uuid.NewString(), Date: "2025-03-10", Time: "   "}, []string{"time"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			_, err := f.svc.CreateBooking(context.Background(), customer(), tt.req)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			for _, field := range tt.fields {
				assert.Contains(t, verr.Fields, field)
			}
			assert.Len(t, verr.Fields, len(tt.fields))
		})
	}
}

func TestCreateBooking_VenueNotFound(t *testing.T) {
	f := newBookingFixture(t)
	id := uuid.New()
	f.venues.On("GetByID", mock.Anything, id).Return(nil, domain.ErrVenueNotFound)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: id.String(), Date: "2025-03-10", Time: "6:00am - 7:00am",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBooking_InactiveVenue(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())
	venue.IsActive = false
	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "6:00am - 7:00am",
	})

	assert.ErrorIs(t, err, domain.ErrVenueInactive)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBooking_UndeclaredSlot(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())
	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "9:00pm - 10:00pm",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "time")
}

func TestCreateBooking_NonPositiveVenuePrice(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())
	venue.Price = 0
	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "6:00am - 7:00am",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestCreateBooking_SlotAlreadyHeld(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())
	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
	f.bookings.On("ListLiveByVenueDate", mock.Anything, venue.ID, mock.Anything).
		Return([]domain.Booking{{ID: uuid.New(), VenueID: venue.ID, Time: "6:00am - 7:00am", Status: domain.BookingConfirmed}}, nil)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "6:00AM - 7:00AM",
	})

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, venue.ID.String(), conflict.VenueID)
	assert.Equal(t, "2025-03-10", conflict.Date.String())
	assert.Equal(t, "6:00am - 7:00am", conflict.Time)
}

func TestCreateBooking_LostRaceAtInsert(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())
	day, _ := domain.ParseDate("2025-03-10")
	conflict := domain.Slot{VenueID: venue.ID, Date: day, Time: "6:00am - 7:00am"}.Conflict()

	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
	f.bookings.On("ListLiveByVenueDate", mock.Anything, venue.ID, day).Return(nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(conflict)

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "6:00am - 7:00am",
	})

	assert.ErrorIs(t, err, domain.ErrSlotConflict)
	assert.NotErrorIs(t, err, domain.ErrInternal)
	f.events.AssertNotCalled(t, "PublishBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_StorageFailureIsInternal(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())

	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
	f.bookings.On("ListLiveByVenueDate", mock.Anything, venue.ID, mock.Anything).Return(nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-10", Time: "6:00am - 7:00am",
	})

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.False(t, errors.Is(err, domain.ErrSlotConflict))
}

func TestCreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	f := newBookingFixture(t)
	venue := activeVenue(uuid.New())

	f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
	f.bookings.On("ListLiveByVenueDate", mock.Anything, venue.ID, mock.Anything).Return(nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("PublishBooking", mock.Anything, ports.EventBookingCreated, mock.Anything).Return(errors.New("channel closed"))

	res, err := f.svc.CreateBooking(context.Background(), customer(), services.CreateBookingRequest{
		VenueID: venue.ID.String(), Date: "2025-03-12", Time: "any time works here",
	})

	require.NoError(t, err)
	assert.Equal(t, "any time works here", res.Booking.Time, "no declared slots for that day")
	assert.Equal(t, logrus.WarnLevel, f.hook.LastEntry().Level)
}

func TestCancelBooking(t *testing.T) {
	actor := customer()
	bookingID := uuid.New()
	confirmed := func() *domain.Booking {
		return &domain.Booking{ID: bookingID, UserID: actor.UserID, Status: domain.BookingConfirmed}
	}

	t.Run("success", func(t *testing.T) {
		f := newBookingFixture(t)
		cancelledAt := fixedNow
		cancelled := confirmed()
		cancelled.Status = domain.BookingCancelled
		cancelled.CancelledAt = &cancelledAt

		f.bookings.On("GetByID", mock.Anything, bookingID).Return(confirmed(), nil)
		f.bookings.On("Cancel", mock.Anything, bookingID, fixedNow).Return(cancelled, nil)
		f.events.On("PublishBooking", mock.Anything, ports.EventBookingCancelled, cancelled).Return(nil)

		got, err := f.svc.CancelBooking(context.Background(), actor, bookingID.String())

		require.NoError(t, err)
		assert.Equal(t, domain.BookingCancelled, got.Status)
		require.NotNil(t, got.CancelledAt)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetByID", mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

		_, err := f.svc.CancelBooking(context.Background(), actor, bookingID.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.CancelBooking(context.Background(), actor, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetByID", mock.Anything, bookingID).Return(confirmed(), nil)

		_, err := f.svc.CancelBooking(context.Background(), customer(), bookingID.String())
		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		b := confirmed()
		b.Status = domain.BookingCancelled
		f.bookings.On("GetByID", mock.Anything, bookingID).Return(b, nil)

		_, err := f.svc.CancelBooking(context.Background(), actor, bookingID.String())
		assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	})

	t.Run("lost race to a concurrent cancel", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetByID", mock.Anything, bookingID).Return(confirmed(), nil)
		f.bookings.On("Cancel", mock.Anything, bookingID, fixedNow).Return(nil, domain.ErrAlreadyCancelled)

		_, err := f.svc.CancelBooking(context.Background(), actor, bookingID.String())
		assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	})
}

func TestListBookingsForUser_Partitions(t *testing.T) {
	f := newBookingFixture(t)
	actor := customer()
	mk := func(date string, status domain.BookingStatus) domain.Booking {
		d, _ := domain.ParseDate(date)
		return domain.Booking{ID: uuid.New(), UserID: actor.UserID, Date: d, Status: status}
	}
	list := []domain.Booking{
		mk("2025-03-05", domain.BookingConfirmed),
		mk("2025-03-01", domain.BookingConfirmed),
		mk("2025-02-27", domain.BookingConfirmed),
		mk("2025-03-04", domain.BookingCancelled),
	}
	f.bookings.On("ListByUser", mock.Anything, actor.UserID).Return(list, nil)

	got, err := f.svc.ListBookingsForUser(context.Background(), actor)

	require.NoError(t, err)
	assert.Len(t, got.Bookings, 4)
	assert.Len(t, got.Active, 2)
	assert.Len(t, got.Past, 1)
	assert.Len(t, got.Cancelled, 1)
}

func TestListBookingsForVenue(t *testing.T) {
	venueOwner := owner()
	venue := activeVenue(venueOwner.UserID)

	t.Run("owner sees bookings", func(t *testing.T) {
		f := newBookingFixture(t)
		f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)
		f.bookings.On("ListByVenue", mock.Anything, venue.ID).Return([]domain.Booking{{ID: uuid.New()}}, nil)

		got, err := f.svc.ListBookingsForVenue(context.Background(), venueOwner, venue.ID.String())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("other owner is forbidden", func(t *testing.T) {
		f := newBookingFixture(t)
		f.venues.On("GetByID", mock.Anything, venue.ID).Return(venue, nil)

		_, err := f.svc.ListBookingsForVenue(context.Background(), owner(), venue.ID.String())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("customer is forbidden before any lookup", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.ListBookingsForVenue(context.Background(), customer(), venue.ID.String())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
