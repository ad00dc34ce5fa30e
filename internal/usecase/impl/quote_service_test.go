package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"promo/config"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	mockUsecase "promo/internal/mocks/usecase"
	"promo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQuoteService(t *testing.T, cfg *config.Config) (usecase.QuoteUsecase, *mockUsecase.MockPlacementUsecase) {
	resolver := mockUsecase.NewMockPlacementUsecase(t)
	srv := NewQuoteService(QuoteServiceParams{
		Resolver: resolver,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, resolver
}

func TestQuoteService_Quote_AppliesStackingPerTarget(t *testing.T) {
	srv, resolver := createTestQuoteService(t, &config.Config{})
	ctx := context.Background()

	exclusive := createTestPromotion(func(p *entity.Promotion) {
		p.Stacking = entity.StackingNone
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(5)
	})
	bigger := createTestPromotion(func(p *entity.Promotion) {
		p.ValueType = entity.ValueTypePercentage
		p.Value = floatPtr(50)
	})
	product := createTestPromotion(func(p *entity.Promotion) {
		p.Target = entity.ProductTarget("sku-1")
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(12.5)
	})

	input := usecase.QuoteInput{ResolveInput: homeHeroInput(), OrderSubtotal: 100}
	resolver.EXPECT().Resolve(ctx, input.ResolveInput).Return([]*entity.Promotion{bigger, exclusive, product}, nil)

	quote, err := srv.Quote(ctx, input)

	require.NoError(t, err)
	require.Len(t, quote.Groups, 2)
	assert.Equal(t, exclusive.ID, quote.Groups[0].Applied[0].Promotion.ID)
	assert.InDelta(t, 17.5, quote.TotalDiscount, 1e-9)
	assert.InDelta(t, 100, quote.Subtotal, 1e-9)
}

func TestQuoteService_Quote_NarrowsToCartTargets(t *testing.T) {
	srv, resolver := createTestQuoteService(t, &config.Config{})
	ctx := context.Background()

	store := createTestPromotion(func(p *entity.Promotion) {
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(10)
	})
	other := createTestPromotion(func(p *entity.Promotion) {
		p.Target = entity.StoreTarget("store-2")
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(20)
	})

	input := usecase.QuoteInput{
		ResolveInput:  homeHeroInput(),
		OrderSubtotal: 60,
		Targets:       []entity.Target{entity.StoreTarget("store-2")},
	}
	resolver.EXPECT().Resolve(ctx, input.ResolveInput).Return([]*entity.Promotion{store, other}, nil)

	quote, err := srv.Quote(ctx, input)

	require.NoError(t, err)
	require.Len(t, quote.Groups, 1)
	assert.InDelta(t, 20, quote.TotalDiscount, 1e-9)
}

func TestQuoteService_Quote_TotalCappedAtSubtotal(t *testing.T) {
	srv, resolver := createTestQuoteService(t, &config.Config{})
	ctx := context.Background()

	var promotions []*entity.Promotion
	for _, ref := range []string{"a", "b", "c"} {
		promotions = append(promotions, createTestPromotion(func(p *entity.Promotion) {
			p.Target = entity.ProductTarget(ref)
			p.ValueType = entity.ValueTypeFixed
			p.Value = floatPtr(30)
		}))
	}

	input := usecase.QuoteInput{ResolveInput: homeHeroInput(), OrderSubtotal: 50}
	resolver.EXPECT().Resolve(ctx, input.ResolveInput).Return(promotions, nil)

	quote, err := srv.Quote(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 50, quote.TotalDiscount, 1e-9)
}

func TestQuoteService_Quote_LegacyFixedCap(t *testing.T) {
	cfg := &config.Config{Promotion: &config.PromotionConfig{LegacyFixedCap: true}}
	srv, resolver := createTestQuoteService(t, cfg)
	ctx := context.Background()

	fixed := createTestPromotion(func(p *entity.Promotion) {
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(40)
		p.MaxDiscountAmount = floatPtr(10)
	})

	input := usecase.QuoteInput{ResolveInput: homeHeroInput(), OrderSubtotal: 100}
	resolver.EXPECT().Resolve(ctx, input.ResolveInput).Return([]*entity.Promotion{fixed}, nil)

	quote, err := srv.Quote(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 40, quote.TotalDiscount, 1e-9)
}

func TestQuoteService_Quote_Errors(t *testing.T) {
	t.Run("negative subtotal", func(t *testing.T) {
		srv, _ := createTestQuoteService(t, &config.Config{})

		_, err := srv.Quote(context.Background(), usecase.QuoteInput{ResolveInput: homeHeroInput(), OrderSubtotal: -1})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("resolver failure", func(t *testing.T) {
		srv, resolver := createTestQuoteService(t, &config.Config{})
		ctx := context.Background()
		input := usecase.QuoteInput{ResolveInput: homeHeroInput(), OrderSubtotal: 10}

		resolver.EXPECT().Resolve(ctx, input.ResolveInput).Return(nil, domainerrors.ErrInvalidPlacement)

		_, err := srv.Quote(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPlacement)
	})
}
