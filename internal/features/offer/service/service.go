package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	apperrors "scratchcard-backend/internal/common/errors"
	"scratchcard-backend/internal/common/metrics"
	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/features/offer/seed"
	"scratchcard-backend/internal/storage"
)

type catalogService struct {
	// mu covers the whole load-modify-save cycle and guards rng.
	mu      sync.Mutex
	store   storage.CatalogStore
	rng     Rand
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

type Option func(*catalogService)

// WithRand replaces the default ChaCha8 source, e.g. with a seeded one in tests.
func WithRand(r Rand) Option {
	return func(s *catalogService) { s.rng = r }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *catalogService) { s.logger = logger }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(s *catalogService) { s.metrics = m }
}

func NewCatalogService(store storage.CatalogStore, opts ...Option) CatalogService {
	s := &catalogService{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = newSecureRand()
	}
	return s
}

func newSecureRand() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

func (s *catalogService) SeedIfAbsent(ctx context.Context, seeds seed.Provider) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := false
	err := s.locked(ctx, func() error {
		_, err := s.store.LoadCatalog(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return s.persistenceError("load_catalog", err)
		}

		offers := models.FreshOffers(seeds.SeedOffers())
		if err := s.store.SaveCatalog(ctx, offers); err != nil {
			return s.persistenceError("save_catalog", err)
		}
		seeded = true
		s.logger.Info().Int("offers", len(offers)).Msg("Offer catalog seeded")
		return nil
	})
	return seeded, err
}

func (s *catalogService) Draw(ctx context.Context) (*models.DrawResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result *models.DrawResult
	err := s.locked(ctx, func() error {
		offers, err := s.store.LoadCatalog(ctx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return s.persistenceError("load_catalog", err)
		}

		// Indexes into offers so the increment lands in the full list.
		available := make([]int, 0, len(offers))
		candidates := make([]models.Offer, 0, len(offers))
		for i, o := range offers {
			if !o.Exhausted() {
				available = append(available, i)
				candidates = append(candidates, o)
			}
		}

		if len(candidates) == 0 {
			result = models.ExhaustedResult(models.DrawOutcomeExhausted, models.ExhaustedMessage)
			return nil
		}
		total := totalWeight(candidates)
		if total <= 0 {
			result = models.ExhaustedResult(models.DrawOutcomeZeroWeight, models.ZeroWeightMessage)
			return nil
		}

		pick, fallback := pickWeighted(candidates, total, s.rng)
		if fallback {
			s.logger.Warn().Float64("total_weight", total).Msg("Weighted sweep missed; used uniform fallback")
		}

		selected := &offers[available[pick]]
		selected.UsedCount++
		if err := s.store.SaveCatalog(ctx, offers); err != nil {
			return s.persistenceError("save_catalog", err)
		}

		result = &models.DrawResult{
			Name:    selected.Name,
			Image:   selected.Image,
			OfferID: selected.ID,
			Outcome: models.DrawOutcomeRedeemed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDraw(result.Outcome)
	if result.Exhausted() {
		s.logger.Info().Str("outcome", result.Outcome).Msg("Draw found no available offer")
	} else {
		s.logger.Debug().Str("offer_id", result.OfferID).Msg("Offer redeemed")
	}
	return result, nil
}

func (s *catalogService) Reset(ctx context.Context, seeds seed.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked(ctx, func() error {
		offers := models.FreshOffers(seeds.SeedOffers())
		if err := s.store.SaveCatalog(ctx, offers); err != nil {
			return s.persistenceError("save_catalog", err)
		}
		s.logger.Info().Int("offers", len(offers)).Msg("Offer catalog reset")
		return nil
	})
}

func (s *catalogService) List(ctx context.Context) ([]models.Offer, error) {
	offers, err := s.store.LoadCatalog(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Offer{}, nil
	}
	if err != nil {
		return nil, s.persistenceError("load_catalog", err)
	}
	return offers, nil
}

// locked runs fn under the store's cross-process catalog lock, if any.
func (s *catalogService) locked(ctx context.Context, fn func() error) error {
	err := storage.WithLock(ctx, s.store, storage.LockCatalog, fn)
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, storage.ErrLockTimeout) {
		s.metrics.RecordStoreError("lock_catalog")
		return apperrors.NewStateBusyError(storage.LockCatalog, err)
	}
	return s.persistenceError("lock_catalog", err)
}

func (s *catalogService) persistenceError(op string, err error) error {
	s.metrics.RecordStoreError(op)
	s.logger.Error().Err(err).Str("operation", op).Msg("Catalog store failure")
	return apperrors.NewPersistenceError(op, err)
}
