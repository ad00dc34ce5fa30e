package usecase

import (
	"context"
	"time"

	"promo/internal/domain/entity"
)

// ResolveInput is the rendering context promotions are resolved for.
type ResolveInput struct {
	Placement entity.Placement
	City      string         // optional
	Channel   entity.Channel // optional
	Now       time.Time
}

// PlacementUsecase defines the read path that resolves promotions for a UI slot
type PlacementUsecase interface {
	// Resolve returns the promotions eligible for the input, ordered for display.
	// A successful resolution dispatches one batched view increment for the result.
	Resolve(ctx context.Context, input ResolveInput) ([]*entity.Promotion, error)
}
