package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	VenueID     uuid.UUID        `json:"venueId"`
	VenueName   string           `json:"venueName"`
	VenueImage  string           `json:"venueImage"`
	Date        Date             `json:"date"`
	Time        string           `json:"time"`
	Duration    string           `json:"duration"`
	Price       float64          `json:"price"`
	Status      BookingStatus    `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	CancelledAt *time.Time       `json:"cancelledAt,omitempty"`
	Customer    *CustomerSummary `json:"user,omitempty"`
}

func (b *Booking) IsLive() bool {
	return b.Status == BookingConfirmed
}

// Slot identifies one bookable interval of a venue.
type Slot struct {
	VenueID uuid.UUID
	Date    Date
	Time    string
}

func (s Slot) Conflict() *SlotConflictError {
	return &SlotConflictError{VenueID: s.VenueID.String(), Date: s.Date, Time: s.Time}
}

// NormalizeSlotLabel collapses whitespace so "11:00am -  12:30pm" and
// "11:00am - 12:30pm" name the same slot.
func NormalizeSlotLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

// NewBooking builds a confirmed booking, snapshotting venue name, image and price.
func NewBooking(userID uuid.UUID, v *Venue, day Date, slot, duration string, now time.Time) (*Booking, error) {
	if v.Price <= 0 {
		verr := NewValidationError()
		verr.Add("price", "must be greater than zero")
		return nil, verr
	}
	if strings.TrimSpace(duration) == "" {
		duration = v.PriceUnit
	}
	if duration == "" {
		duration = DefaultPriceUnit
	}

	return &Booking{
		ID:         uuid.New(),
		UserID:     userID,
		VenueID:    v.ID,
		VenueName:  v.Name,
		VenueImage: v.Image,
		Date:       day,
		Time:       NormalizeSlotLabel(slot),
		Duration:   strings.TrimSpace(duration),
		Price:      v.Price,
		Status:     BookingConfirmed,
		CreatedAt:  now,
	}, nil
}

// Cancel flips a confirmed booking to cancelled.
func (b *Booking) Cancel(at time.Time) error {
	if b.Status == BookingCancelled {
		return ErrAlreadyCancelled
	}
	b.Status = BookingCancelled
	b.CancelledAt = &at
	return nil
}
