package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	apperrors "scratchcard-backend/internal/common/errors"
	"scratchcard-backend/internal/common/metrics"
	"scratchcard-backend/internal/storage"
)

type playCounterService struct {
	mu      sync.Mutex
	store   storage.CounterStore
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

type Option func(*playCounterService)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *playCounterService) { s.logger = logger }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(s *playCounterService) { s.metrics = m }
}

func NewPlayCounterService(store storage.CounterStore, opts ...Option) PlayCounterService {
	s := &playCounterService{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *playCounterService) InitIfAbsent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked(ctx, func() error {
		_, err := s.store.LoadCount(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return s.persistenceError("load_count", err)
		}
		if err := s.store.SaveCount(ctx, 0); err != nil {
			return s.persistenceError("save_count", err)
		}
		s.logger.Info().Msg("Play counter initialized")
		return nil
	})
}

func (s *playCounterService) Increment(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next int64
	err := s.locked(ctx, func() error {
		current, err := s.load(ctx)
		if err != nil {
			return err
		}
		if err := s.store.SaveCount(ctx, current+1); err != nil {
			return s.persistenceError("save_count", err)
		}
		next = current + 1
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.RecordPlay()
	s.logger.Debug().Int64("count", next).Msg("Play recorded")
	return next, nil
}

func (s *playCounterService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked(ctx, func() error {
		if err := s.store.SaveCount(ctx, 0); err != nil {
			return s.persistenceError("save_count", err)
		}
		s.logger.Info().Msg("Play counter reset")
		return nil
	})
}

func (s *playCounterService) Current(ctx context.Context) (int64, error) {
	return s.load(ctx)
}

func (s *playCounterService) load(ctx context.Context) (int64, error) {
	count, err := s.store.LoadCount(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, s.persistenceError("load_count", err)
	}
	return count, nil
}

func (s *playCounterService) locked(ctx context.Context, fn func() error) error {
	err := storage.WithLock(ctx, s.store, storage.LockCounter, fn)
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, storage.ErrLockTimeout) {
		s.metrics.RecordStoreError("lock_count")
		return apperrors.NewStateBusyError(storage.LockCounter, err)
	}
	return s.persistenceError("lock_count", err)
}

func (s *playCounterService) persistenceError(op string, err error) error {
	s.metrics.RecordStoreError(op)
	s.logger.Error().Err(err).Str("operation", op).Msg("Play counter store failure")
	return apperrors.NewPersistenceError(op, err)
}
