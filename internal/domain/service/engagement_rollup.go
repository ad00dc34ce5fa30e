package service

import (
	"context"
)

// EngagementCounts is one promotion's engagement on one business day.
type EngagementCounts struct {
	Views       int64 `json:"views"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// EngagementRollup aggregates delivered engagement events per promotion and business day.
type EngagementRollup interface {
	// Record adds the event to the rollup of its business day
	Record(ctx context.Context, event *EngagementEvent) error

	// Counts returns the rollup of a promotion for a business day (YYYY-MM-DD)
	Counts(ctx context.Context, promotionID, date string) (EngagementCounts, error)
}
