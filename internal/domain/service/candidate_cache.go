package service

import (
	"context"

	"promo/internal/domain/entity"
)

// CandidateKey identifies one cached candidate list.
type CandidateKey struct {
	Placement entity.Placement
	City      string
	Channel   entity.Channel
	Date      string // business day, yyyy-mm-dd
}

// CandidateCache caches store candidates for a resolution scope.
// Implementations treat their own failures as misses and never return errors.
type CandidateCache interface {
	// Get returns the cached candidates and whether the key was present.
	Get(ctx context.Context, key CandidateKey) ([]*entity.Promotion, bool)

	// Set stores candidates for the key.
	Set(ctx context.Context, key CandidateKey, promotions []*entity.Promotion)

	// Invalidate makes every previously cached list unreachable.
	Invalidate(ctx context.Context)
}
