package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

func TestStoreNotFoundBeforeSave(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.LoadCount(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreCatalogIsCopied(t *testing.T) {
	s := New()
	ctx := context.Background()
	offers := []models.Offer{{ID: "a", Name: "A", MaxUsage: 2}}

	require.NoError(t, s.SaveCatalog(ctx, offers))
	offers[0].UsedCount = 2

	got, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got[0].UsedCount, "save must copy")

	got[0].UsedCount = 1
	again, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, again[0].UsedCount, "load must copy")
}

func TestStoreCount(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveCount(ctx, 7))
	got, err := s.LoadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, got)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SaveCount(ctx, 1), context.Canceled)
	_, err := s.LoadCatalog(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
