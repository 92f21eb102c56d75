package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Bookings deliberately carry no foreign key to venues: a deleted venue's
// past bookings stay as receipts with their snapshot fields.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash TEXT NOT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		avatar TEXT NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL DEFAULT 'CUSTOMER' CHECK (role IN ('CUSTOMER', 'VENUE_OWNER')),
		total_bookings INTEGER NOT NULL DEFAULT 0 CHECK (total_bookings >= 0),
		reward_points INTEGER NOT NULL DEFAULT 0 CHECK (reward_points >= 0),
		joined_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (LOWER(email))`,

	`CREATE TABLE IF NOT EXISTS venues (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id),
		name VARCHAR(255) NOT NULL,
		location TEXT NOT NULL,
		short_location TEXT NOT NULL,
		sport VARCHAR(64) NOT NULL,
		type VARCHAR(64) NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price > 0),
		price_unit VARCHAR(64) NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		images TEXT[] NOT NULL DEFAULT '{}',
		about TEXT NOT NULL DEFAULT '',
		facilities TEXT[] NOT NULL DEFAULT '{}',
		available_slots JSONB NOT NULL DEFAULT '{}',
		open_hours VARCHAR(64) NOT NULL DEFAULT '',
		contact_phone VARCHAR(32) NOT NULL DEFAULT '',
		rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_owner_id ON venues(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_active_created ON venues(is_active, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		venue_id UUID NOT NULL,
		venue_name VARCHAR(255) NOT NULL,
		venue_image TEXT NOT NULL DEFAULT '',
		date DATE NOT NULL,
		time VARCHAR(64) NOT NULL,
		duration VARCHAR(64) NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price > 0),
		status VARCHAR(20) NOT NULL CHECK (status IN ('CONFIRMED', 'CANCELLED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		cancelled_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_live_slot
		ON bookings (venue_id, date, LOWER(time)) WHERE status = 'CONFIRMED'`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_venue_created ON bookings(venue_id, created_at DESC)`,
}

func RunMigrations(ctx context.Context, db *sql.DB, log logrus.FieldLogger) error {
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	log.WithField("statements", len(migrations)).Info("database migrations completed")
	return nil
}
