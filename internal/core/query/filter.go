// Package query holds side-effect-free views over venue and booking snapshots.
package query

import (
	"strings"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
)

type VenueFilter struct {
	Sport       string
	SearchQuery string
	MinPrice    float64
	MaxPrice    float64
	MinRating   float64
}

func DefaultVenueFilter() VenueFilter {
	return VenueFilter{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice}
}

// Predicate decides whether a single venue survives a filter.
type Predicate func(v *domain.Venue) bool

// Predicates returns one independent predicate per active criterion. The
// price range is always present; an unset MaxPrice means DefaultMaxPrice.
func (f VenueFilter) Predicates() []Predicate {
	var preds []Predicate

	if sport := strings.TrimSpace(f.Sport); sport != "" {
		preds = append(preds, func(v *domain.Venue) bool {
			return v.Sport == sport
		})
	}

	if q := strings.ToLower(strings.TrimSpace(f.SearchQuery)); q != "" {
		preds = append(preds, func(v *domain.Venue) bool {
			return strings.Contains(strings.ToLower(v.Name), q) ||
				strings.Contains(strings.ToLower(v.Location), q) ||
				strings.Contains(strings.ToLower(v.Sport), q)
		})
	}

	lo, hi := f.MinPrice, f.MaxPrice
	if hi <= 0 {
		hi = DefaultMaxPrice
	}
	preds = append(preds, func(v *domain.Venue) bool {
		return v.Price >= lo && v.Price <= hi
	})

	if f.MinRating > 0 {
		minRating := f.MinRating
		preds = append(preds, func(v *domain.Venue) bool {
			return v.Rating >= minRating
		})
	}

	return preds
}

// FilterVenues keeps the venues that satisfy every predicate, preserving input order.
func FilterVenues(venues []domain.Venue, f VenueFilter) []domain.Venue {
	return Apply(venues, f.Predicates())
}

func Apply(venues []domain.Venue, preds []Predicate) []domain.Venue {
	out := make([]domain.Venue, 0, len(venues))
	for i := range venues {
		if matchAll(&venues[i], preds) {
			out = append(out, venues[i])
		}
	}
	return out
}

func matchAll(v *domain.Venue, preds []Predicate) bool {
	for _, p := range preds {
		if !p(v) {
			return false
		}
	}
	return true
}
