package service

import "scratchcard-backend/internal/features/offer/models"

// totalWeight sums the positive probabilities of offers.
func totalWeight(offers []models.Offer) float64 {
	var total float64
	for _, o := range offers {
		if o.Probability > 0 {
			total += o.Probability
		}
	}
	return total
}

// sweep walks offers in order and returns the index of the first one whose
// running weight reaches r, or -1 when the sum never does. Zero-weight
// offers are skipped so they can never be chosen.
func sweep(offers []models.Offer, r float64) int {
	var cumulative float64
	for i, o := range offers {
		if o.Probability <= 0 {
			continue
		}
		cumulative += o.Probability
		if cumulative >= r {
			return i
		}
	}
	return -1
}

// pickWeighted draws r from [0, total) and sweeps for it. total must be > 0.
// If rounding leaves r above the accumulated sum, it falls back to a
// uniform choice so a draw always lands on an available offer.
func pickWeighted(offers []models.Offer, total float64, rng Rand) (idx int, fallback bool) {
	r := rng.Float64() * total
	if i := sweep(offers, r); i >= 0 {
		return i, false
	}
	return rng.IntN(len(offers)), true
}
