package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range migrations {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	logger, hook := test.NewNullLogger()
	require.NoError(t, RunMigrations(context.Background(), db, logger))

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "database migrations completed", hook.LastEntry().Message)
}

func TestRunMigrations_StopsAtFirstFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnError(errors.New("permission denied"))

	logger, _ := test.NewNullLogger()
	err = RunMigrations(context.Background(), db, logger)

	assert.ErrorContains(t, err, "migration 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiveSlotIndexIsPartial(t *testing.T) {
	var found bool
	for _, m := range migrations {
		if regexp.MustCompile(`ux_bookings_live_slot[\s\S]+WHERE status = 'CONFIRMED'`).MatchString(m) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "playnxt"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=playnxt sslmode=disable", cfg.DSN())
}
