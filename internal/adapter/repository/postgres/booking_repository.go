package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
)

const bookingColumns = `b.id, b.user_id, b.venue_id, b.venue_name, b.venue_image, b.date, b.time, b.duration,
	b.price, b.status, b.created_at, b.cancelled_at`

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create relies on ux_bookings_live_slot to arbitrate concurrent inserts for
// the same slot. The venue row is share-locked so a concurrent delete either
// waits for this booking or makes it fail with not found.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking, grant domain.RewardGrant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var venueID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR SHARE`, booking.VenueID).Scan(&venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("failed to lock venue: %w", err)
	}

	insert := `
	INSERT INTO bookings (id, user_id, venue_id, venue_name, venue_image, date, time, duration, price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.ExecContext(ctx, insert,
		booking.ID, booking.UserID, booking.VenueID, booking.VenueName, booking.VenueImage,
		booking.Date, booking.Time, booking.Duration, booking.Price, booking.Status, booking.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, liveSlotIndex) {
			return domain.Slot{VenueID: booking.VenueID, Date: booking.Date, Time: booking.Time}.Conflict()
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if !grant.IsZero() {
		result, err := tx.ExecContext(ctx, `
		UPDATE users
		SET total_bookings = total_bookings + $2,
			reward_points = reward_points + $3
		WHERE id = $1
		`, grant.UserID, grant.Bookings, grant.Points)
		if err != nil {
			return fmt.Errorf("failed to apply reward grant: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return domain.ErrUserNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		if isUniqueViolation(err, liveSlotIndex) {
			return domain.Slot{VenueID: booking.VenueID, Date: booking.Date, Time: booking.Time}.Conflict()
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// Cancel is a conditional update: of two concurrent cancels only one sees a
// CONFIRMED row.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Booking, error) {
	query := `
	UPDATE bookings b
	SET status = 'CANCELLED', cancelled_at = $2
	WHERE b.id = $1 AND b.status = 'CONFIRMED'
	RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id, at))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrAlreadyCancelled
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings b
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC
	`
	return r.list(ctx, query, false, userID)
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `, u.id, u.name, u.email, u.phone
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	WHERE b.venue_id = $1
	ORDER BY b.created_at DESC
	`
	return r.list(ctx, query, true, venueID)
}

func (r *BookingRepository) ListLiveByVenueDate(ctx context.Context, venueID uuid.UUID, day domain.Date) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings b
	WHERE b.venue_id = $1 AND b.date = $2 AND b.status = 'CONFIRMED'
	`
	return r.list(ctx, query, false, venueID, day)
}

func (r *BookingRepository) list(ctx context.Context, query string, withCustomer bool, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var cancelledAt sql.NullTime
		dest := bookingDest(&b, &cancelledAt)

		var customer domain.CustomerSummary
		if withCustomer {
			dest = append(dest, &customer.ID, &customer.Name, &customer.Email, &customer.Phone)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		if cancelledAt.Valid {
			b.CancelledAt = &cancelledAt.Time
		}
		if withCustomer {
			b.Customer = &customer
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func bookingDest(b *domain.Booking, cancelledAt *sql.NullTime) []any {
	return []any{
		&b.ID, &b.UserID, &b.VenueID, &b.VenueName, &b.VenueImage, &b.Date, &b.Time, &b.Duration,
		&b.Price, &b.Status, &b.CreatedAt, cancelledAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime

	if err := row.Scan(bookingDest(&b, &cancelledAt)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}

	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	return &b, nil
}
