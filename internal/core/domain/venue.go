package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultVenueType  = "Standard"
	DefaultPriceUnit  = "60 minutes"
	DefaultVenueImage = "https://images.unsplash.com/photo-1529900748604-07564a03e7a6?w=800"
	DefaultVenueAbout = "A great venue for sports activities."
	DefaultOpenHours  = "6:00 AM - 11:00 PM"
)

type Venue struct {
	ID             uuid.UUID           `json:"id"`
	OwnerID        uuid.UUID           `json:"ownerId"`
	Name           string              `json:"name"`
	Location       string              `json:"location"`
	ShortLocation  string              `json:"shortLocation"`
	Sport          string              `json:"sport"`
	Type           string              `json:"type"`
	Price          float64             `json:"price"`
	PriceUnit      string              `json:"priceUnit"`
	Image          string              `json:"image"`
	Images         []string            `json:"images"`
	About          string              `json:"about"`
	Facilities     []string            `json:"facilities"`
	AvailableSlots map[string][]string `json:"availableSlots"`
	OpenHours      string              `json:"openHours"`
	ContactPhone   string              `json:"contactPhone,omitempty"`
	Rating         float64             `json:"rating"`
	ReviewCount    int                 `json:"reviewCount"`
	IsActive       bool                `json:"isActive"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Owner          *OwnerSummary       `json:"owner,omitempty"`
}

// VenueFields carries the attributes a venue owner supplies. Nil pointers mean
// "not supplied", which matters for partial updates.
type VenueFields struct {
	Name           *string
	Location       *string
	ShortLocation  *string
	Sport          *string
	Type           *string
	Price          *float64
	PriceUnit      *string
	Image          *string
	Images         []string
	About          *string
	Facilities     []string
	AvailableSlots map[string][]string
	OpenHours      *string
	ContactPhone   *string
	IsActive       *bool
}

// DeclaresSlots reports whether the venue publishes any slot labels for day.
func (v *Venue) DeclaresSlots(day Date) bool {
	return len(v.AvailableSlots[day.String()]) > 0
}

// MatchSlot returns the venue's own spelling of slot on day, if declared.
func (v *Venue) MatchSlot(day Date, slot string) (string, bool) {
	want := NormalizeSlotLabel(slot)
	for _, s := range v.AvailableSlots[day.String()] {
		if strings.EqualFold(NormalizeSlotLabel(s), want) {
			return NormalizeSlotLabel(s), true
		}
	}
	return "", false
}

// NewVenue validates fields and applies the catalog defaults.
func NewVenue(ownerID uuid.UUID, f VenueFields, now time.Time) (*Venue, error) {
	verr := NewValidationError()
	requireText(verr, "name", f.Name)
	requireText(verr, "location", f.Location)
	requireText(verr, "sport", f.Sport)
	switch {
	case f.Price == nil:
		verr.Add("price", "is required")
	case *f.Price <= 0:
		verr.Add("price", "must be greater than zero")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	v := &Venue{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           strings.TrimSpace(*f.Name),
		Location:       strings.TrimSpace(*f.Location),
		Sport:          strings.TrimSpace(*f.Sport),
		Price:          *f.Price,
		ShortLocation:  textOr(f.ShortLocation, strings.TrimSpace(*f.Location)),
		Type:           textOr(f.Type, DefaultVenueType),
		PriceUnit:      textOr(f.PriceUnit, DefaultPriceUnit),
		Image:          textOr(f.Image, DefaultVenueImage),
		About:          textOr(f.About, DefaultVenueAbout),
		OpenHours:      textOr(f.OpenHours, DefaultOpenHours),
		ContactPhone:   textOr(f.ContactPhone, ""),
		Images:         nonNil(f.Images),
		Facilities:     nonNil(f.Facilities),
		AvailableSlots: f.AvailableSlots,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if v.AvailableSlots == nil {
		v.AvailableSlots = map[string][]string{}
	}
	if f.IsActive != nil {
		v.IsActive = *f.IsActive
	}
	return v, nil
}

// Apply validates a patch and copies every supplied field onto v.
func (v *Venue) Apply(f VenueFields, now time.Time) error {
	verr := NewValidationError()
	for name, val := range map[string]*string{"name": f.Name, "location": f.Location, "sport": f.Sport} {
		if val != nil && strings.TrimSpace(*val) == "" {
			verr.Add(name, "must not be empty")
		}
	}
	if f.Price != nil && *f.Price <= 0 {
		verr.Add("price", "must be greater than zero")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	setText(&v.Name, f.Name)
	setText(&v.Location, f.Location)
	setText(&v.ShortLocation, f.ShortLocation)
	setText(&v.Sport, f.Sport)
	setText(&v.Type, f.Type)
	setText(&v.PriceUnit, f.PriceUnit)
	setText(&v.Image, f.Image)
	setText(&v.About, f.About)
	setText(&v.OpenHours, f.OpenHours)
	setText(&v.ContactPhone, f.ContactPhone)
	if f.Price != nil {
		v.Price = *f.Price
	}
	if f.Images != nil {
		v.Images = f.Images
	}
	if f.Facilities != nil {
		v.Facilities = f.Facilities
	}
	if f.AvailableSlots != nil {
		v.AvailableSlots = f.AvailableSlots
	}
	if f.IsActive != nil {
		v.IsActive = *f.IsActive
	}
	v.UpdatedAt = now
	return nil
}

func requireText(verr *ValidationError, field string, val *string) {
	if val == nil || strings.TrimSpace(*val) == "" {
		verr.Add(field, "is required")
	}
}

func textOr(val *string, def string) string {
	if val == nil || strings.TrimSpace(*val) == "" {
		return def
	}
	return strings.TrimSpace(*val)
}

func setText(dst *string, val *string) {
	if val != nil {
		*dst = strings.TrimSpace(*val)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// SlotAvailability is one declared slot label on a given day.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
