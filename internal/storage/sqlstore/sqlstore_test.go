package sqlstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/platform/postgres"
	"scratchcard-backend/internal/platform/sqlite"
	"scratchcard-backend/internal/storage"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)

	s := New(db, SQLite)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleOffers() []models.Offer {
	return []models.Offer{
		{ID: "offer_2", Name: "Mat", Image: "mat.png", MaxUsage: 5, UsedCount: 1, Probability: 10},
		{ID: "offer_1", Name: "Bowl", Image: "bowl.png", MaxUsage: 10, UsedCount: 3, Probability: 7.5},
	}
}

func exerciseStore(t *testing.T, s *Store) {
	ctx := context.Background()

	_, err := s.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.LoadCount(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	offers := sampleOffers()
	require.NoError(t, s.SaveCatalog(ctx, offers))
	got, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, offers, got, "stored order must be preserved")

	offers[0].UsedCount = 2
	offers = offers[:1]
	require.NoError(t, s.SaveCatalog(ctx, offers))
	got, err = s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, offers, got, "save replaces the whole catalog")

	require.NoError(t, s.SaveCount(ctx, 1))
	require.NoError(t, s.SaveCount(ctx, 5))
	count, err := s.LoadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	unlock, err := s.Lock(ctx, storage.LockCatalog)
	require.NoError(t, err)
	unlock()
	assert.NoError(t, s.Ping(ctx))
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, newSQLiteStore(t))
}

func TestSQLiteMigrateIsIdempotent(t *testing.T) {
	s := newSQLiteStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	ctx := context.Background()
	db, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)

	s := New(db, Postgres)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(ctx))
	_, err = db.ExecContext(ctx, `DELETE FROM offers`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM play_counter`)
	require.NoError(t, err)

	exerciseStore(t, s)
}

func TestRebind(t *testing.T) {
	pg := New(nil, Postgres)
	assert.Equal(t, "SELECT $1, $2", pg.rebind("SELECT ?, ?"))

	lite := New(nil, SQLite)
	assert.Equal(t, "SELECT ?, ?", lite.rebind("SELECT ?, ?"))
	assert.Equal(t, "postgres", Postgres.String())
	assert.Equal(t, "sqlite", SQLite.String())
}
