package session

import (
	"slices"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/google/uuid"
)

// Action is one of the transitions declared in this file.
type Action interface {
	action()
}

// SetUser replaces the signed-in user and the favorites that came with it.
// A nil User signs out.
type SetUser struct {
	User      *domain.User
	Favorites []uuid.UUID
}

type SetVenues struct{ Venues []domain.Venue }

type SetBookings struct{ Bookings []domain.Booking }

type AddBooking struct{ Booking domain.Booking }

// CancelBooking marks the booking cancelled locally at At, matching the
// server record. Unknown ids are ignored.
type CancelBooking struct {
	BookingID uuid.UUID
	At        time.Time
}

type ToggleFavorite struct{ VenueID uuid.UUID }

type SetSelectedSport struct{ Sport string }

type SetSearchQuery struct{ Query string }

// SetFilters merges the supplied fields into the current filters.
type SetFilters struct {
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// ResetFilters restores the default filters and clears sport and search text.
type ResetFilters struct{}

type SetLoading struct{ Loading bool }

type SetError struct{ Err string }

func (SetUser) action()          {}
func (SetVenues) action()        {}
func (SetBookings) action()      {}
func (AddBooking) action()       {}
func (CancelBooking) action()    {}
func (ToggleFavorite) action()   {}
func (SetSelectedSport) action() {}
func (SetSearchQuery) action()   {}
func (SetFilters) action()       {}
func (ResetFilters) action()     {}
func (SetLoading) action()       {}
func (SetError) action()         {}

// Reduce returns the state that follows s after a. It never modifies s or
// the slices it references.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		s.User = a.User
		s.Favorites = slices.Clone(a.Favorites)
		if s.Favorites == nil {
			s.Favorites = []uuid.UUID{}
		}
	case SetVenues:
		s.Venues = slices.Clone(a.Venues)
	case SetBookings:
		s.Bookings = slices.Clone(a.Bookings)
	case AddBooking:
		s.Bookings = append(slices.Clone(s.Bookings), a.Booking)
	case CancelBooking:
		bookings := slices.Clone(s.Bookings)
		for i := range bookings {
			if bookings[i].ID == a.BookingID {
				at := a.At
				bookings[i].Status = domain.BookingCancelled
				bookings[i].CancelledAt = &at
			}
		}
		s.Bookings = bookings
	case ToggleFavorite:
		s.Favorites = query.ToggleFavorite(s.Favorites, a.VenueID)
	case SetSelectedSport:
		s.SelectedSport = a.Sport
	case SetSearchQuery:
		s.SearchQuery = a.Query
	case SetFilters:
		if a.MinPrice != nil {
			s.Filters.MinPrice = *a.MinPrice
		}
		if a.MaxPrice != nil {
			s.Filters.MaxPrice = *a.MaxPrice
		}
		if a.MinRating != nil {
			s.Filters.MinRating = *a.MinRating
		}
	case ResetFilters:
		s.Filters = DefaultFilters()
		s.SelectedSport = ""
		s.SearchQuery = ""
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Err = a.Err
	}
	return s
}
