package query

import "github.com/CodyBrat/PlayNxt/internal/core/domain"

type BookingPartition struct {
	Active    []domain.Booking `json:"active"`
	Past      []domain.Booking `json:"past"`
	Cancelled []domain.Booking `json:"cancelled"`
}

// Classify places a single booking. Cancelled wins regardless of date;
// otherwise a booking dated today or later is active.
func Classify(b *domain.Booking, today domain.Date) string {
	switch {
	case b.Status == domain.BookingCancelled:
		return "cancelled"
	case !b.Date.Before(today):
		return "active"
	default:
		return "past"
	}
}

func PartitionBookings(bookings []domain.Booking, today domain.Date) BookingPartition {
	p := BookingPartition{
		Active:    []domain.Booking{},
		Past:      []domain.Booking{},
		Cancelled: []domain.Booking{},
	}
	for i := range bookings {
		switch Classify(&bookings[i], today) {
		case "cancelled":
			p.Cancelled = append(p.Cancelled, bookings[i])
		case "active":
			p.Active = append(p.Active, bookings[i])
		default:
			p.Past = append(p.Past, bookings[i])
		}
	}
	return p
}
