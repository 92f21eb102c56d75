package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const ActiveVenuesKey = "venues:active"

type VenueCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewVenueCache(client redis.Cmdable, ttl time.Duration) *VenueCache {
	return &VenueCache{client: client, ttl: ttl}
}

func (c *VenueCache) GetActiveVenues(ctx context.Context) ([]domain.Venue, bool, error) {
	data, err := c.client.Get(ctx, ActiveVenuesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read venue cache: %w", err)
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached venues: %w", err)
	}
	return venues, true, nil
}

func (c *VenueCache) SetActiveVenues(ctx context.Context, venues []domain.Venue) error {
	data, err := json.Marshal(venues)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ActiveVenuesKey, data, c.ttl).Err()
}

func (c *VenueCache) InvalidateActiveVenues(ctx context.Context) error {
	return c.client.Del(ctx, ActiveVenuesKey).Err()
}

// Nop satisfies ports.VenueCache when Redis is disabled; every read misses.
type Nop struct{}

func (Nop) GetActiveVenues(context.Context) ([]domain.Venue, bool, error) { return nil, false, nil }
func (Nop) SetActiveVenues(context.Context, []domain.Venue) error         { return nil }
func (Nop) InvalidateActiveVenues(context.Context) error                  { return nil }
