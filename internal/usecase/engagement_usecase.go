package usecase

import (
	"context"

	"github.com/google/uuid"
)

// EngagementUsecase records best-effort analytics counters for promotions
type EngagementUsecase interface {
	// RecordViews schedules a view increment for every id and returns without waiting for it.
	RecordViews(ctx context.Context, ids []uuid.UUID)

	// RecordClick increments the click counter. Only an unknown id is reported as an error.
	RecordClick(ctx context.Context, id uuid.UUID) error

	// RecordConversion increments the conversion counter. Only an unknown id is reported as an error.
	RecordConversion(ctx context.Context, id uuid.UUID) error
}
