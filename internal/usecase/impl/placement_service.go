// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"promo/config"
	deliverycontext "promo/internal/delivery/context"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/promotion"
	"promo/internal/domain/repository"
	"promo/internal/domain/service"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type placementService struct {
	promotionRepo repository.PromotionRepository
	cache         service.CandidateCache
	engagement    usecase.EngagementUsecase
	offsetHours   int
	logger        *slog.Logger
}

// PlacementServiceParams holds dependencies for PlacementService, injected by Fx.
type PlacementServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	Cache         service.CandidateCache
	Engagement    usecase.EngagementUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPlacementService creates the resolver for placement reads.
func NewPlacementService(params PlacementServiceParams) usecase.PlacementUsecase {
	return &placementService{
		promotionRepo: params.PromotionRepo,
		cache:         params.Cache,
		engagement:    params.Engagement,
		offsetHours:   params.Config.PromotionSettings().BusinessDayOffsetHours,
		logger:        params.Logger,
	}
}

func (srv *placementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the promotions eligible for the rendering context, ordered for display.
func (srv *placementService) Resolve(ctx context.Context, input usecase.ResolveInput) ([]*entity.Promotion, error) {
	if !input.Placement.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPlacement, "placement %q", input.Placement)
	}
	if input.Channel != "" && !input.Channel.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidChannel, "channel %q", input.Channel)
	}

	day := promotion.BusinessDayOf(input.Now, srv.offsetHours)

	candidates, err := srv.candidates(ctx, input, day)
	if err != nil {
		return nil, err
	}

	scope := promotion.Scope{
		Placement: input.Placement,
		City:      input.City,
		Channel:   input.Channel,
		Now:       input.Now,
	}
	resolved := promotion.Filter(candidates, scope, srv.offsetHours)

	// A cancelled resolution must not count views.
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if len(resolved) > 0 {
		ids := make([]uuid.UUID, len(resolved))
		for i, p := range resolved {
			ids[i] = p.ID
		}
		srv.engagement.RecordViews(ctx, ids)
	}

	srv.log(ctx).Debug("Resolved placement",
		slog.String("placement", input.Placement.String()),
		slog.String("city", input.City),
		slog.String("channel", input.Channel.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("resolved", len(resolved)),
	)

	return resolved, nil
}

func (srv *placementService) candidates(ctx context.Context, input usecase.ResolveInput, day promotion.BusinessDay) ([]*entity.Promotion, error) {
	key := service.CandidateKey{
		Placement: input.Placement,
		City:      input.City,
		Channel:   input.Channel,
		Date:      day.Date(),
	}

	if cached, ok := srv.cache.Get(ctx, key); ok {
		return cached, nil
	}

	candidates, err := srv.promotionRepo.FindCandidates(ctx, repository.CandidateFilter{
		Placement: input.Placement,
		City:      input.City,
		Channel:   input.Channel,
		DayStart:  day.Start,
		DayEnd:    day.End,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate promotions")
	}

	srv.cache.Set(ctx, key, candidates)

	return candidates, nil
}
