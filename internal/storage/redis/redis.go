package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

const (
	keyCatalog    = "offers"
	keyCounter    = "scratch_count"
	keyLockPrefix = "lock:"

	defaultLockTTL  = 5 * time.Second
	defaultLockWait = 2 * time.Second
	lockPollDelay   = 20 * time.Millisecond
)

// Releases the lock only if we still own it.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type counterRecord struct {
	Count int64 `json:"count"`
}

// Options tune key naming and locking.
type Options struct {
	KeyPrefix string
	LockTTL   time.Duration
	LockWait  time.Duration
}

// Store keeps catalog and counter as two JSON string keys and serializes
// read-modify-write cycles across instances with a SET NX lock.
type Store struct {
	client   redis.UniversalClient
	prefix   string
	lockTTL  time.Duration
	lockWait time.Duration
}

func New(client redis.UniversalClient, opts Options) *Store {
	s := &Store{
		client:   client,
		prefix:   opts.KeyPrefix,
		lockTTL:  opts.LockTTL,
		lockWait: opts.LockWait,
	}
	if s.lockTTL <= 0 {
		s.lockTTL = defaultLockTTL
	}
	if s.lockWait <= 0 {
		s.lockWait = defaultLockWait
	}
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) LoadCatalog(ctx context.Context) ([]models.Offer, error) {
	data, err := s.client.Get(ctx, s.key(keyCatalog)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	var offers []models.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return offers, nil
}

func (s *Store) SaveCatalog(ctx context.Context, offers []models.Offer) error {
	if offers == nil {
		offers = []models.Offer{}
	}
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := s.client.Set(ctx, s.key(keyCatalog), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

func (s *Store) LoadCount(ctx context.Context) (int64, error) {
	data, err := s.client.Get(ctx, s.key(keyCounter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get play count: %w", err)
	}

	var rec counterRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("failed to unmarshal play count: %w", err)
	}
	return rec.Count, nil
}

func (s *Store) SaveCount(ctx context.Context, count int64) error {
	data, err := json.Marshal(counterRecord{Count: count})
	if err != nil {
		return fmt.Errorf("failed to marshal play count: %w", err)
	}
	if err := s.client.Set(ctx, s.key(keyCounter), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save play count: %w", err)
	}
	return nil
}

// Lock acquires the named lock, polling until LockWait elapses. The TTL
// frees the lock if the holder dies mid-cycle.
func (s *Store) Lock(ctx context.Context, name string) (func(), error) {
	lockKey := s.key(keyLockPrefix + name)
	token := uuid.New().String()
	deadline := time.Now().Add(s.lockWait)

	for {
		ok, err := s.client.SetNX(ctx, lockKey, token, s.lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("lock %s: %w", name, storage.ErrLockTimeout)
		}

		timer := time.NewTimer(lockPollDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return func() {
		// Release even if the request context was canceled meanwhile.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = unlockScript.Run(releaseCtx, s.client, []string{lockKey}, token).Err()
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close is a no-op: the client is owned by the caller.
func (s *Store) Close() error { return nil }
