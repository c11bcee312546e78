package memory

import (
	"context"
	"sync"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

// Store keeps catalog and counter in process memory. State is lost on exit.
type Store struct {
	mu       sync.RWMutex
	offers   []models.Offer
	hasOffer bool
	count    int64
	hasCount bool
}

func New() *Store {
	return &Store{}
}

// LoadCatalog returns a copy of the stored catalog.
func (s *Store) LoadCatalog(ctx context.Context) ([]models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasOffer {
		return nil, storage.ErrNotFound
	}
	return models.CloneOffers(s.offers), nil
}

// SaveCatalog replaces the stored catalog with a copy of offers.
func (s *Store) SaveCatalog(ctx context.Context, offers []models.Offer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers = models.CloneOffers(offers)
	s.hasOffer = true
	return nil
}

func (s *Store) LoadCount(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasCount {
		return 0, storage.ErrNotFound
	}
	return s.count, nil
}

func (s *Store) SaveCount(ctx context.Context, count int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count = count
	s.hasCount = true
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
