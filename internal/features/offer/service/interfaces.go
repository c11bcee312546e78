package service

import (
	"context"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/features/offer/seed"
)

// CatalogService owns the offer catalog and the weighted draw.
type CatalogService interface {
	// SeedIfAbsent persists the seed catalog when nothing is stored yet and
	// reports whether it did.
	SeedIfAbsent(ctx context.Context, seeds seed.Provider) (bool, error)
	// Draw picks one available offer by weight and redeems it. An empty or
	// zero-weight catalog yields the exhausted sentinel, not an error.
	Draw(ctx context.Context) (*models.DrawResult, error)
	// Reset overwrites the catalog with the seed offers, used_count zeroed.
	Reset(ctx context.Context, seeds seed.Provider) error
	// List returns the stored catalog in order.
	List(ctx context.Context) ([]models.Offer, error)
}

// Rand is the random source used by Draw. *math/rand/v2.Rand satisfies it.
// Implementations need not be safe for concurrent use.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
