package redis

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	opts.KeyPrefix = "scratchcard-test:" + uuid.New().String() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, opts.KeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		_ = client.Close()
	})
	return New(client, opts)
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.LoadCount(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	offers := []models.Offer{{ID: "a", Name: "A", Image: "a.png", MaxUsage: 3, UsedCount: 1, Probability: 2.5}}
	require.NoError(t, s.SaveCatalog(ctx, offers))
	require.NoError(t, s.SaveCount(ctx, 9))

	got, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, offers, got)

	count, err := s.LoadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 9, count)
	assert.NoError(t, s.Ping(ctx))
}

func TestStoreLockExcludesPeers(t *testing.T) {
	s := newTestStore(t, Options{LockTTL: 2 * time.Second, LockWait: 100 * time.Millisecond})
	ctx := context.Background()

	unlock, err := s.Lock(ctx, storage.LockCatalog)
	require.NoError(t, err)

	_, err = s.Lock(ctx, storage.LockCatalog)
	assert.ErrorIs(t, err, storage.ErrLockTimeout)

	other, err := s.Lock(ctx, storage.LockCounter)
	require.NoError(t, err, "locks are per state")
	other()

	unlock()
	again, err := s.Lock(ctx, storage.LockCatalog)
	require.NoError(t, err)
	again()
}

func TestStoreLockSerializesIncrements(t *testing.T) {
	s := newTestStore(t, Options{LockWait: 5 * time.Second})
	ctx := context.Background()
	require.NoError(t, s.SaveCount(ctx, 0))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := storage.WithLock(ctx, s, storage.LockCounter, func() error {
				n, err := s.LoadCount(ctx)
				if err != nil {
					return err
				}
				return s.SaveCount(ctx, n+1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := s.LoadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, workers, count)
}
