package database

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/stub"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/000001_create_game_result.up.sql",
		"migrations/000001_create_game_result.down.sql",
	}, names)

	up, err := fs.ReadFile(migrations, "migrations/000001_create_game_result.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS game_result")
}

type closeTrackingSource struct {
	source.Driver
	closed bool
}

func (s *closeTrackingSource) Close() error {
	s.closed = true
	return s.Driver.Close()
}

func newStubMigrator(t *testing.T) (*migrate.Migrate, *closeTrackingSource) {
	t.Helper()
	src, err := iofs.New(migrations, "migrations")
	require.NoError(t, err)
	tracked := &closeTrackingSource{Driver: src}

	db, err := stub.WithInstance(nil, &stub.Config{})
	require.NoError(t, err)

	migrator, err := migrate.NewWithInstance("iofs", tracked, "stub", db)
	require.NoError(t, err)
	return migrator, tracked
}

func TestConnectAndMigrateClosesMigratorWhenConnectFails(t *testing.T) {
	migrator, tracked := newStubMigrator(t)
	refused := errors.New("connection refused")

	pool, got, err := connectAndMigrate(
		context.Background(),
		func() (*migrate.Migrate, error) { return migrator, nil },
		func(context.Context) (*pgxpool.Pool, error) { return nil, refused },
	)
	assert.ErrorIs(t, err, refused)
	assert.Nil(t, pool)
	assert.Nil(t, got)
	assert.True(t, tracked.closed)
}

func TestConnectAndMigrateSkipsConnectWhenMigrateFails(t *testing.T) {
	failed := errors.New("failed to migrate database")
	connected := false

	_, _, err := connectAndMigrate(
		context.Background(),
		func() (*migrate.Migrate, error) { return nil, failed },
		func(context.Context) (*pgxpool.Pool, error) {
			connected = true
			return nil, nil
		},
	)
	assert.ErrorIs(t, err, failed)
	assert.False(t, connected)
}
