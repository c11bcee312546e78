package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scratchcard-backend/internal/features/offer/models"
)

// fixedRand returns preset values so the sweep can be driven exactly.
type fixedRand struct {
	f     float64
	n     int
	calls int
}

func (r *fixedRand) Float64() float64 { r.calls++; return r.f }
func (r *fixedRand) IntN(int) int     { r.calls++; return r.n }

func weights(ws ...float64) []models.Offer {
	out := make([]models.Offer, len(ws))
	for i, w := range ws {
		out[i] = models.Offer{ID: string(rune('a' + i)), Probability: w, MaxUsage: 1}
	}
	return out
}

func TestTotalWeightIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, 17.5, totalWeight(weights(10, 0, 7.5)))
	assert.Equal(t, 0.0, totalWeight(weights(0, 0)))
	assert.Equal(t, 0.0, totalWeight(nil))
}

func TestSweepBoundaries(t *testing.T) {
	offers := weights(10, 20, 30)

	tests := []struct {
		name string
		r    float64
		want int
	}{
		{name: "zero picks first", r: 0, want: 0},
		{name: "inside first", r: 9.99, want: 0},
		{name: "exactly first boundary is inclusive", r: 10, want: 0},
		{name: "just past first boundary", r: 10.0001, want: 1},
		{name: "exactly second boundary", r: 30, want: 1},
		{name: "inside last", r: 45, want: 2},
		{name: "exactly total", r: 60, want: 2},
		{name: "beyond total", r: 60.0001, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sweep(offers, tt.r))
		})
	}
}

func TestSweepSkipsZeroWeight(t *testing.T) {
	offers := weights(0, 5, 0, 5)

	assert.Equal(t, 1, sweep(offers, 0), "zero-weight head must not win at r=0")
	assert.Equal(t, 3, sweep(offers, 7))
}

func TestPickWeightedUsesSweep(t *testing.T) {
	offers := weights(10, 20, 30)
	rng := &fixedRand{f: 0.5}

	idx, fallback := pickWeighted(offers, totalWeight(offers), rng)

	assert.Equal(t, 1, idx, "r=30 lands on the second boundary")
	assert.False(t, fallback)
	assert.Equal(t, 1, rng.calls)
}

func TestPickWeightedFallsBackToUniform(t *testing.T) {
	offers := weights(10, 20, 30)
	// Simulates a rounding overshoot past the accumulated total.
	rng := &fixedRand{f: 1.5, n: 2}

	idx, fallback := pickWeighted(offers, totalWeight(offers), rng)

	assert.True(t, fallback)
	assert.Equal(t, 2, idx)
}
