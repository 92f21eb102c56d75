package ports

import (
	"context"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
)

// VenueCache holds the public venue listing. A miss returns (nil, false, nil).
type VenueCache interface {
	GetActiveVenues(ctx context.Context) ([]domain.Venue, bool, error)
	SetActiveVenues(ctx context.Context, venues []domain.Venue) error
	InvalidateActiveVenues(ctx context.Context) error
}
