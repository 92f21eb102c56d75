// Package session is the client-side store for a signed-in user: the venues
// and bookings last fetched, favorites, and the active search. All
// transitions go through Reduce. The API server does not use it.
package session

import (
	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/google/uuid"
)

type Filters struct {
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

func DefaultFilters() Filters {
	return Filters{MinPrice: query.DefaultMinPrice, MaxPrice: query.DefaultMaxPrice}
}

type State struct {
	User          *domain.User
	Venues        []domain.Venue
	Bookings      []domain.Booking
	Favorites     []uuid.UUID
	SelectedSport string
	SearchQuery   string
	Filters       Filters
	Loading       bool
	Err           string
}

func InitialState() State {
	return State{Filters: DefaultFilters()}
}

// VenueFilter combines the sport, search text and numeric filters into a
// single query filter.
func (s State) VenueFilter() query.VenueFilter {
	return query.VenueFilter{
		Sport:       s.SelectedSport,
		SearchQuery: s.SearchQuery,
		MinPrice:    s.Filters.MinPrice,
		MaxPrice:    s.Filters.MaxPrice,
		MinRating:   s.Filters.MinRating,
	}
}

func (s State) VisibleVenues() []domain.Venue {
	return query.FilterVenues(s.Venues, s.VenueFilter())
}

func (s State) FavoriteVenues() []domain.Venue {
	out := make([]domain.Venue, 0, len(s.Favorites))
	for _, v := range s.Venues {
		if query.IsFavorite(s.Favorites, v.ID) {
			out = append(out, v)
		}
	}
	return out
}

func (s State) IsFavorite(venueID uuid.UUID) bool {
	return query.IsFavorite(s.Favorites, venueID)
}

func (s State) PartitionBookings(today domain.Date) query.BookingPartition {
	return query.PartitionBookings(s.Bookings, today)
}
