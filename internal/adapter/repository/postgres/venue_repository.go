package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const venueColumns = `v.id, v.owner_id, v.name, v.location, v.short_location, v.sport, v.type, v.price, v.price_unit,
	v.image, v.images, v.about, v.facilities, v.available_slots, v.open_hours, v.contact_phone,
	v.rating, v.review_count, v.is_active, v.created_at, v.updated_at`

const ownerColumns = `u.id, u.name, u.phone`

type VenueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	slots, err := json.Marshal(venue.AvailableSlots)
	if err != nil {
		return fmt.Errorf("failed to encode available slots: %w", err)
	}

	query := `
	INSERT INTO venues (id, owner_id, name, location, short_location, sport, type, price, price_unit,
		image, images, about, facilities, available_slots, open_hours, contact_phone,
		rating, review_count, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err = r.db.ExecContext(ctx, query,
		venue.ID, venue.OwnerID, venue.Name, venue.Location, venue.ShortLocation, venue.Sport, venue.Type,
		venue.Price, venue.PriceUnit, venue.Image, pq.Array(venue.Images), venue.About, pq.Array(venue.Facilities),
		slots, venue.OpenHours, venue.ContactPhone, venue.Rating, venue.ReviewCount, venue.IsActive,
		venue.CreatedAt, venue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	query := `
	SELECT ` + venueColumns + `, ` + ownerColumns + `
	FROM venues v
	JOIN users u ON u.id = v.owner_id
	WHERE v.id = $1
	`

	v, err := scanVenueWithOwner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VenueRepository) ListActive(ctx context.Context) ([]domain.Venue, error) {
	query := `
	SELECT ` + venueColumns + `, ` + ownerColumns + `
	FROM venues v
	JOIN users u ON u.id = v.owner_id
	WHERE v.is_active = TRUE
	ORDER BY v.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenueWithOwner(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *v)
	}
	return venues, rows.Err()
}

func (r *VenueRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Venue, error) {
	query := `
	SELECT ` + venueColumns + `
	FROM venues v
	WHERE v.owner_id = $1
	ORDER BY v.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner venues: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(venueDest(&v)...); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	slots, err := json.Marshal(venue.AvailableSlots)
	if err != nil {
		return fmt.Errorf("failed to encode available slots: %w", err)
	}

	query := `
	UPDATE venues
	SET name = $2, location = $3, short_location = $4, sport = $5, type = $6, price = $7,
		price_unit = $8, image = $9, images = $10, about = $11, facilities = $12,
		available_slots = $13, open_hours = $14, contact_phone = $15, is_active = $16, updated_at = $17
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		venue.ID, venue.Name, venue.Location, venue.ShortLocation, venue.Sport, venue.Type, venue.Price,
		venue.PriceUnit, venue.Image, pq.Array(venue.Images), venue.About, pq.Array(venue.Facilities),
		slots, venue.OpenHours, venue.ContactPhone, venue.IsActive, venue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

// Delete locks the venue row first so no booking can slip in between the
// upcoming-bookings check and the delete.
func (r *VenueRepository) Delete(ctx context.Context, id uuid.UUID, today domain.Date) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var locked uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("failed to lock venue: %w", err)
	}

	var upcoming bool
	err = tx.QueryRowContext(ctx, `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE venue_id = $1 AND status = 'CONFIRMED' AND date >= $2
	)`, id, today).Scan(&upcoming)
	if err != nil {
		return fmt.Errorf("failed to check upcoming bookings: %w", err)
	}
	if upcoming {
		return domain.ErrVenueHasUpcomingBookings
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func venueDest(v *domain.Venue) []any {
	return []any{
		&v.ID, &v.OwnerID, &v.Name, &v.Location, &v.ShortLocation, &v.Sport, &v.Type, &v.Price, &v.PriceUnit,
		&v.Image, pq.Array(&v.Images), &v.About, pq.Array(&v.Facilities), &slotsScanner{dst: &v.AvailableSlots},
		&v.OpenHours, &v.ContactPhone, &v.Rating, &v.ReviewCount, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	}
}

func scanVenueWithOwner(row rowScanner) (*domain.Venue, error) {
	var v domain.Venue
	var owner domain.OwnerSummary

	dest := append(venueDest(&v), &owner.ID, &owner.Name, &owner.Phone)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan venue: %w", err)
	}

	v.Owner = &owner
	return &v, nil
}

// slotsScanner decodes the JSONB slot map.
type slotsScanner struct {
	dst *map[string][]string
}

func (s *slotsScanner) Scan(value any) error {
	*s.dst = map[string][]string{}

	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into available slots", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, s.dst)
}
