package service

import "context"

// PlayCounterService owns the global play count.
type PlayCounterService interface {
	// InitIfAbsent stores a zero count when none exists yet.
	InitIfAbsent(ctx context.Context) error
	// Increment adds one play and returns the new total.
	Increment(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
	// Current returns the stored count, 0 when nothing was saved.
	Current(ctx context.Context) (int64, error)
}
