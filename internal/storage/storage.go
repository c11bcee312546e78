// Package storage defines the persistence contract shared by the offer
// catalog and the play counter. The two records are independently
// addressable: backends keep them in separate files, keys or tables.
package storage

import (
	"context"
	"errors"

	"scratchcard-backend/internal/features/offer/models"
)

var (
	// ErrNotFound is returned by loads when the record was never saved.
	ErrNotFound = errors.New("storage: record not found")
	// ErrLockTimeout is returned when a shared lock could not be acquired in time.
	ErrLockTimeout = errors.New("storage: lock wait timed out")
)

// Lock names.
const (
	LockCatalog = "catalog"
	LockCounter = "play_counter"
)

// CatalogStore persists the ordered offer list as a whole.
type CatalogStore interface {
	LoadCatalog(ctx context.Context) ([]models.Offer, error)
	SaveCatalog(ctx context.Context, offers []models.Offer) error
}

// CounterStore persists the single play count.
type CounterStore interface {
	LoadCount(ctx context.Context) (int64, error)
	SaveCount(ctx context.Context, count int64) error
}

// Locker is implemented by backends shared between processes. The returned
// unlock func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, name string) (unlock func(), err error)
}

// Store is a full backend.
type Store interface {
	CatalogStore
	CounterStore
	Ping(ctx context.Context) error
	Close() error
}

// WithLock runs fn holding the named lock when backend implements Locker,
// and runs it directly otherwise.
func WithLock(ctx context.Context, backend any, name string, fn func() error) error {
	locker, ok := backend.(Locker)
	if !ok {
		return fn()
	}
	unlock, err := locker.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}
