// Package memory is a process-local storage adapter. A single mutex guards
// all three tables so the slot check and the insert are one critical section.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*domain.User
	emails   map[string]uuid.UUID
	venues   map[uuid.UUID]*domain.Venue
	bookings map[uuid.UUID]*domain.Booking
	// live maps a confirmed slot to the booking holding it.
	live map[domain.Slot]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*domain.User),
		emails:   make(map[string]uuid.UUID),
		venues:   make(map[uuid.UUID]*domain.Venue),
		bookings: make(map[uuid.UUID]*domain.Booking),
		live:     make(map[domain.Slot]uuid.UUID),
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Venues() *VenueRepository     { return &VenueRepository{s: s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

func slotOf(b *domain.Booking) domain.Slot {
	return domain.Slot{VenueID: b.VenueID, Date: b.Date, Time: strings.ToLower(domain.NormalizeSlotLabel(b.Time))}
}

func copyBooking(b *domain.Booking) domain.Booking {
	out := *b
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		out.CancelledAt = &at
	}
	return out
}

func copyVenue(v *domain.Venue) domain.Venue {
	out := *v
	out.Images = append([]string(nil), v.Images...)
	out.Facilities = append([]string(nil), v.Facilities...)
	out.AvailableSlots = make(map[string][]string, len(v.AvailableSlots))
	for day, slots := range v.AvailableSlots {
		out.AvailableSlots[day] = append([]string(nil), slots...)
	}
	out.Owner = nil
	return out
}

func sortBookingsNewestFirst(bs []domain.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		return bs[i].CreatedAt.After(bs[j].CreatedAt)
	})
}

func sortVenuesNewestFirst(vs []domain.Venue) {
	sort.SliceStable(vs, func(i, j int) bool {
		return vs[i].CreatedAt.After(vs[j].CreatedAt)
	})
}
