package service

import (
	"context"

	"github.com/rs/zerolog"

	"scratchcard-backend/internal/common/metrics"
	"scratchcard-backend/internal/features/admin/models"
	offermodels "scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/features/offer/seed"
	offerservice "scratchcard-backend/internal/features/offer/service"
	playservice "scratchcard-backend/internal/features/playcounter/service"
)

// AdminService combines catalog and play counter maintenance.
type AdminService interface {
	// ResetAll restores the seed catalog, then zeroes the play count.
	// Each step is atomic on its own; the pair is not.
	ResetAll(ctx context.Context) error
	Stats(ctx context.Context) (*models.Stats, error)
}

type adminService struct {
	catalog offerservice.CatalogService
	plays   playservice.PlayCounterService
	seeds   seed.Provider
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

func NewAdminService(
	catalog offerservice.CatalogService,
	plays playservice.PlayCounterService,
	seeds seed.Provider,
	logger zerolog.Logger,
	m *metrics.Recorder,
) AdminService {
	return &adminService{
		catalog: catalog,
		plays:   plays,
		seeds:   seeds,
		logger:  logger,
		metrics: m,
	}
}

func (s *adminService) ResetAll(ctx context.Context) error {
	if err := s.catalog.Reset(ctx, s.seeds); err != nil {
		return err
	}
	if err := s.plays.Reset(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Catalog reset but play counter reset failed")
		return err
	}
	s.metrics.RecordReset()
	s.logger.Info().Msg("Game state reset")
	return nil
}

func (s *adminService) Stats(ctx context.Context) (*models.Stats, error) {
	offers, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.plays.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Stats{
		Offers:    offermodels.NewOfferStats(offers),
		PlayCount: count,
	}, nil
}
