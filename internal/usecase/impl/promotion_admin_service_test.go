package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/repository"
	mockRepo "promo/internal/mocks/repository"
	mockService "promo/internal/mocks/service"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// promotionAdminFixtures holds all test dependencies for promotion admin service tests.
type promotionAdminFixtures struct {
	service       usecase.PromotionAdminUsecase
	txManager     *mockRepo.MockTransactionManager
	promotionRepo *mockRepo.MockPromotionRepository
	cache         *mockService.MockCandidateCache
}

func createTestPromotionAdminService(t *testing.T) promotionAdminFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	cache := mockService.NewMockCandidateCache(t)

	srv := NewPromotionAdminService(PromotionAdminServiceParams{
		TxManager:     txManager,
		PromotionRepo: promotionRepo,
		Cache:         cache,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return promotionAdminFixtures{
		service:       srv,
		txManager:     txManager,
		promotionRepo: promotionRepo,
		cache:         cache,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func validCreateInput() *usecase.CreatePromotionInput {
	return &usecase.CreatePromotionInput{
		Title:      "Ramadan offer",
		Target:     entity.CategoryTarget("groceries"),
		Value:      floatPtr(10),
		ValueType:  entity.ValueTypePercentage,
		Placements: entity.Placements{entity.PlacementHomeStrip},
		Cities:     []string{" " + testCity + " ", ""},
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestPromotionAdminService_CreatePromotion_AppliesDefaults(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.promotionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Promotion")).
		Run(func(_ context.Context, p *entity.Promotion) { p.ID = id }).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return()

	created, err := fx.service.CreatePromotion(ctx, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, entity.StackingBest, created.Stacking)
	assert.Equal(t, entity.Channels{entity.ChannelApp}, created.Channels)
	assert.Equal(t, []string{testCity}, created.Cities)
}

func TestPromotionAdminService_CreatePromotion_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.CreatePromotionInput)
		wantErr error
	}{
		{
			name:    "end before start",
			mutate:  func(in *usecase.CreatePromotionInput) { in.EndDate = in.StartDate.Add(-time.Hour) },
			wantErr: domainerrors.ErrInvalidDateRange,
		},
		{
			name:    "end equals start",
			mutate:  func(in *usecase.CreatePromotionInput) { in.EndDate = in.StartDate },
			wantErr: domainerrors.ErrInvalidDateRange,
		},
		{
			name:    "missing target reference",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Target = entity.StoreTarget("") },
			wantErr: domainerrors.ErrTargetRefMissing,
		},
		{
			name:    "unknown target type",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Target = entity.Target{Type: "brand", RefID: "x"} },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "no placements",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Placements = nil },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown placement",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Placements = entity.Placements{"footer"} },
			wantErr: domainerrors.ErrInvalidPlacement,
		},
		{
			name:    "unknown channel",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Channels = entity.Channels{"sms"} },
			wantErr: domainerrors.ErrInvalidChannel,
		},
		{
			name:    "value type without value",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Value = nil },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative value",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Value = floatPtr(-1) },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown stacking",
			mutate:  func(in *usecase.CreatePromotionInput) { in.Stacking = "all" },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative cap",
			mutate:  func(in *usecase.CreatePromotionInput) { in.MaxDiscountAmount = floatPtr(-5) },
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionAdminService(t)
			input := validCreateInput()
			tt.mutate(input)

			_, err := fx.service.CreatePromotion(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPromotionAdminService_CreatePromotion_DisplayOnly(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	input := validCreateInput()
	input.Value = nil
	input.ValueType = ""

	fx.promotionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return()

	created, err := fx.service.CreatePromotion(ctx, input)

	require.NoError(t, err)
	assert.False(t, created.HasDiscount())
}

func TestPromotionAdminService_UpdatePromotion_PatchesUnderLock(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()

	existing := createTestPromotion(func(p *entity.Promotion) {
		p.ValueType = entity.ValueTypeFixed
		p.Value = floatPtr(5)
		p.ViewsCount = 42
	})
	newTitle := "Updated"
	newOrder := 3

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPromotionRepository(t)

			mockFactory.EXPECT().PromotionRepo().Return(txRepo)
			txRepo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)
			txRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(p *entity.Promotion) bool {
					return p.Title == newTitle && p.Order == newOrder && p.ViewsCount == 42
				})).
				Return(nil)

			return fn(mockFactory)
		})
	fx.cache.EXPECT().Invalidate(ctx).Return()

	updated, err := fx.service.UpdatePromotion(ctx, existing.ID, &usecase.UpdatePromotionInput{
		Title: &newTitle,
		Order: &newOrder,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, entity.StoreTarget("store-1"), updated.Target)
}

func TestPromotionAdminService_UpdatePromotion_RefOnlyKeepsTargetType(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	existing := createTestPromotion()

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPromotionRepository(t)

			mockFactory.EXPECT().PromotionRepo().Return(txRepo)
			txRepo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)
			txRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

			return fn(mockFactory)
		})
	fx.cache.EXPECT().Invalidate(ctx).Return()

	updated, err := fx.service.UpdatePromotion(ctx, existing.ID, &usecase.UpdatePromotionInput{
		Target: &entity.Target{RefID: "store-9"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StoreTarget("store-9"), updated.Target)
}

func TestPromotionAdminService_UpdatePromotion_InvalidPatchRollsBack(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	existing := createTestPromotion()
	earlier := existing.StartDate.Add(-24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPromotionRepository(t)

			mockFactory.EXPECT().PromotionRepo().Return(txRepo)
			txRepo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdatePromotion(ctx, existing.ID, &usecase.UpdatePromotionInput{EndDate: &earlier})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	fx.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestPromotionAdminService_UpdatePromotion_NotFound(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPromotionRepository(t)

			mockFactory.EXPECT().PromotionRepo().Return(txRepo)
			txRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrPromotionNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdatePromotion(ctx, id, &usecase.UpdatePromotionInput{})

	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)
}

func TestPromotionAdminService_DeletePromotion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestPromotionAdminService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.promotionRepo.EXPECT().Delete(ctx, id).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx).Return()

		assert.NoError(t, fx.service.DeletePromotion(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPromotionAdminService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.promotionRepo.EXPECT().Delete(ctx, id).Return(repository.ErrPromotionNotFound)

		assert.ErrorIs(t, fx.service.DeletePromotion(ctx, id), domainerrors.ErrPromotionNotFound)
	})
}

func TestPromotionAdminService_GetAndList(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	promo := createTestPromotion()
	active := true
	filter := repository.ListFilter{IsActive: &active}

	fx.promotionRepo.EXPECT().FindByID(ctx, promo.ID).Return(promo, nil)
	fx.promotionRepo.EXPECT().List(ctx, filter).Return([]*entity.Promotion{promo}, nil)

	got, err := fx.service.GetPromotion(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, promo, got)

	list, err := fx.service.ListPromotions(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPromotionAdminService_GetPromotion_StoreError(t *testing.T) {
	fx := createTestPromotionAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.promotionRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("timeout"))

	_, err := fx.service.GetPromotion(ctx, id)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrPromotionNotFound)
}
