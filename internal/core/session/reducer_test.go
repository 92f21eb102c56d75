package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func venue(name, sport string, price, rating float64) domain.Venue {
	return domain.Venue{ID: uuid.New(), Name: name, Location: "Bengaluru", Sport: sport, Price: price, Rating: rating, IsActive: true}
}

func TestInitialState(t *testing.T) {
	s := session.InitialState()
	assert.Nil(t, s.User)
	assert.Equal(t, session.Filters{MinPrice: 0, MaxPrice: 10000}, s.Filters)
	assert.False(t, s.Loading)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	b := domain.Booking{ID: uuid.New(), Status: domain.BookingConfirmed}
	before := session.Reduce(session.InitialState(), session.SetBookings{Bookings: []domain.Booking{b}})

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	after := session.Reduce(before, session.CancelBooking{BookingID: b.ID, At: at})

	assert.Equal(t, domain.BookingConfirmed, before.Bookings[0].Status)
	assert.Nil(t, before.Bookings[0].CancelledAt)
	assert.Equal(t, domain.BookingCancelled, after.Bookings[0].Status)
	require.NotNil(t, after.Bookings[0].CancelledAt)
	assert.Equal(t, at, *after.Bookings[0].CancelledAt)

	added := session.Reduce(before, session.AddBooking{Booking: domain.Booking{ID: uuid.New()}})
	assert.Len(t, before.Bookings, 1)
	assert.Len(t, added.Bookings, 2)
}

func TestReduce_CancelUnknownIsNoop(t *testing.T) {
	b := domain.Booking{ID: uuid.New(), Status: domain.BookingConfirmed}
	s := session.Reduce(session.InitialState(), session.SetBookings{Bookings: []domain.Booking{b}})

	s = session.Reduce(s, session.CancelBooking{BookingID: uuid.New()})

	assert.Equal(t, domain.BookingConfirmed, s.Bookings[0].Status)
}

func TestReduce_UserAndFavorites(t *testing.T) {
	fav := uuid.New()
	user := &domain.User{ID: uuid.New(), Name: "Asha"}

	s := session.Reduce(session.InitialState(), session.SetUser{User: user, Favorites: []uuid.UUID{fav}})
	assert.Same(t, user, s.User)
	assert.True(t, s.IsFavorite(fav))

	other := uuid.New()
	s = session.Reduce(s, session.ToggleFavorite{VenueID: other})
	s = session.Reduce(s, session.ToggleFavorite{VenueID: fav})
	assert.Equal(t, []uuid.UUID{other}, s.Favorites)

	s = session.Reduce(s, session.SetUser{})
	assert.Nil(t, s.User)
	assert.Empty(t, s.Favorites)
}

func TestReduce_Filters(t *testing.T) {
	s := session.InitialState()
	s = session.Reduce(s, session.SetFilters{MaxPrice: ptr(900.0)})
	s = session.Reduce(s, session.SetFilters{MinRating: ptr(4.0)})
	s = session.Reduce(s, session.SetSelectedSport{Sport: "Football"})
	s = session.Reduce(s, session.SetSearchQuery{Query: "turf"})

	assert.Equal(t, session.Filters{MinPrice: 0, MaxPrice: 900, MinRating: 4}, s.Filters)

	s = session.Reduce(s, session.ResetFilters{})
	assert.Equal(t, session.DefaultFilters(), s.Filters)
	assert.Empty(t, s.SelectedSport)
	assert.Empty(t, s.SearchQuery)
}

func TestReduce_LoadingAndError(t *testing.T) {
	s := session.Reduce(session.InitialState(), session.SetLoading{Loading: true})
	s = session.Reduce(s, session.SetError{Err: "network down"})
	assert.True(t, s.Loading)
	assert.Equal(t, "network down", s.Err)
}

func TestState_DerivedViews(t *testing.T) {
	turf := venue("City Turf", "Football", 800, 4.5)
	court := venue("Smash Court", "Badminton", 400, 4.0)
	pricey := venue("Elite Turf", "Football", 2500, 4.9)

	s := session.Reduce(session.InitialState(), session.SetVenues{Venues: []domain.Venue{turf, court, pricey}})
	s = session.Reduce(s, session.SetSelectedSport{Sport: "Football"})
	s = session.Reduce(s, session.SetFilters{MaxPrice: ptr(1000.0)})
	s = session.Reduce(s, session.ToggleFavorite{VenueID: court.ID})

	visible := s.VisibleVenues()
	require.Len(t, visible, 1)
	assert.Equal(t, turf.ID, visible[0].ID)

	favs := s.FavoriteVenues()
	require.Len(t, favs, 1)
	assert.Equal(t, court.ID, favs[0].ID)

	today := domain.Date{Year: 2025, Month: 3, Day: 1}
	s = session.Reduce(s, session.SetBookings{Bookings: []domain.Booking{
		{ID: uuid.New(), Status: domain.BookingConfirmed, Date: domain.Date{Year: 2025, Month: 3, Day: 2}},
		{ID: uuid.New(), Status: domain.BookingConfirmed, Date: domain.Date{Year: 2025, Month: 2, Day: 2}},
		{ID: uuid.New(), Status: domain.BookingCancelled, Date: domain.Date{Year: 2025, Month: 3, Day: 2}},
	}})
	p := s.PartitionBookings(today)
	assert.Len(t, p.Active, 1)
	assert.Len(t, p.Past, 1)
	assert.Len(t, p.Cancelled, 1)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := session.NewStore()

	var notified int
	var mu sync.Mutex
	store.Subscribe(func(session.State) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(session.AddBooking{Booking: domain.Booking{ID: uuid.New()}})
		}()
	}
	wg.Wait()

	assert.Len(t, store.State().Bookings, 50)
	assert.Equal(t, 50, notified)
}
