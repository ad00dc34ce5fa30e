package impl

import (
	"context"
	"log/slog"

	"promo/config"
	deliverycontext "promo/internal/delivery/context"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/promotion"
	"promo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type quoteService struct {
	resolver   usecase.PlacementUsecase
	calculator promotion.Calculator
	logger     *slog.Logger
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	Resolver usecase.PlacementUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewQuoteService creates the order pricing service.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	settings := params.Config.PromotionSettings()

	return &quoteService{
		resolver:   params.Resolver,
		calculator: promotion.NewCalculator(promotion.WithLegacyFixedCap(settings.LegacyFixedCap)),
		logger:     params.Logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Quote resolves the placement and prices the order against the surviving promotions.
func (srv *quoteService) Quote(ctx context.Context, input usecase.QuoteInput) (*usecase.Quote, error) {
	if input.OrderSubtotal < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("order subtotal must not be negative"))
	}

	resolved, err := srv.resolver.Resolve(ctx, input.ResolveInput)
	if err != nil {
		return nil, err
	}

	candidates := narrowToTargets(resolved, input.Targets)
	selection := srv.calculator.Select(candidates, promotion.OrderContext{
		Subtotal: input.OrderSubtotal,
		ItemQty:  input.ItemQty,
	})

	quote := &usecase.Quote{
		Subtotal:      input.OrderSubtotal,
		TotalDiscount: selection.Total(input.OrderSubtotal),
		Groups:        selection,
	}

	srv.log(ctx).Debug("Quoted order",
		slog.Float64("subtotal", quote.Subtotal),
		slog.Float64("discount", quote.TotalDiscount),
		slog.Int("groups", len(selection)),
	)

	return quote, nil
}

func narrowToTargets(promotions []*entity.Promotion, targets []entity.Target) []*entity.Promotion {
	if len(targets) == 0 {
		return promotions
	}

	wanted := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		wanted[t.Key()] = struct{}{}
	}

	result := make([]*entity.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if _, ok := wanted[p.Target.Key()]; ok {
			result = append(result, p)
		}
	}

	return result
}
