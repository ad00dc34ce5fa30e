package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "promo/internal/delivery/context"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/repository"
	"promo/internal/domain/service"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type promotionAdminService struct {
	txManager     repository.TransactionManager
	promotionRepo repository.PromotionRepository
	cache         service.CandidateCache
	logger        *slog.Logger
}

// PromotionAdminServiceParams holds dependencies for PromotionAdminService, injected by Fx.
type PromotionAdminServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PromotionRepo repository.PromotionRepository
	Cache         service.CandidateCache
	Logger        *slog.Logger
}

// NewPromotionAdminService creates the management service used by the admin collaborator.
func NewPromotionAdminService(params PromotionAdminServiceParams) usecase.PromotionAdminUsecase {
	return &promotionAdminService{
		txManager:     params.TxManager,
		promotionRepo: params.PromotionRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

func (srv *promotionAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePromotion validates and stores a new promotion.
func (srv *promotionAdminService) CreatePromotion(ctx context.Context, input *usecase.CreatePromotionInput) (*entity.Promotion, error) {
	promo := buildPromotion(input)
	if err := validatePromotion(promo); err != nil {
		srv.log(ctx).Warn("Rejected promotion", slog.String("title", promo.Title), slog.Any("error", err))

		return nil, err
	}

	if err := srv.promotionRepo.Create(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrInvalidPromotion) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}
		srv.log(ctx).Error("Failed to create promotion", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPromotionCreationFailed, err.Error())
	}

	srv.cache.Invalidate(ctx)
	srv.log(ctx).Info("Promotion created", slog.String("promotionID", promo.ID.String()))

	return promo, nil
}

// UpdatePromotion applies a partial update while holding the promotion's row lock.
func (srv *promotionAdminService) UpdatePromotion(ctx context.Context, id uuid.UUID, input *usecase.UpdatePromotionInput) (*entity.Promotion, error) {
	var updated *entity.Promotion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		current, err := promotionRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapPromotionError(err, "failed to load promotion for update")
		}

		applyPromotionPatch(current, input)
		if err := validatePromotion(current); err != nil {
			return err
		}

		if err := promotionRepo.Update(ctx, current); err != nil {
			return mapPromotionError(err, "failed to update promotion")
		}

		updated = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update promotion", slog.String("promotionID", id.String()), slog.Any("error", err))

		return nil, err
	}

	srv.cache.Invalidate(ctx)

	return updated, nil
}

// DeletePromotion soft-deletes a promotion.
func (srv *promotionAdminService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if err := srv.promotionRepo.Delete(ctx, id); err != nil {
		return mapPromotionError(err, "failed to delete promotion")
	}

	srv.cache.Invalidate(ctx)
	srv.log(ctx).Info("Promotion deleted", slog.String("promotionID", id.String()))

	return nil
}

// GetPromotion retrieves a single promotion.
func (srv *promotionAdminService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promo, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPromotionError(err, "failed to get promotion")
	}

	return promo, nil
}

// ListPromotions lists promotions matching the filter.
func (srv *promotionAdminService) ListPromotions(ctx context.Context, filter repository.ListFilter) ([]*entity.Promotion, error) {
	promotions, err := srv.promotionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}

// mapPromotionError converts repository sentinels into application errors.
func mapPromotionError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrPromotionNotFound):
		return errors.Wrap(domainerrors.ErrPromotionNotFound, message)
	case errors.Is(err, repository.ErrInvalidPromotion):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), message)
	default:
		return errors.Wrap(err, message)
	}
}

func buildPromotion(input *usecase.CreatePromotionInput) *entity.Promotion {
	promo := &entity.Promotion{
		Title:             input.Title,
		Description:       input.Description,
		ImageURL:          input.ImageURL,
		LinkURL:           input.LinkURL,
		Target:            input.Target,
		Value:             input.Value,
		ValueType:         input.ValueType,
		Placements:        input.Placements,
		Cities:            normalizeCities(input.Cities),
		Channels:          input.Channels,
		Stacking:          input.Stacking,
		Order:             input.Order,
		MinQty:            input.MinQty,
		MinOrderSubtotal:  input.MinOrderSubtotal,
		MaxDiscountAmount: input.MaxDiscountAmount,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		IsActive:          true,
	}

	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	if len(promo.Channels) == 0 {
		promo.Channels = entity.DefaultChannels()
	}
	if promo.Stacking == "" {
		promo.Stacking = entity.StackingBest
	}

	return promo
}

func applyPromotionPatch(promo *entity.Promotion, input *usecase.UpdatePromotionInput) {
	if input.Title != nil {
		promo.Title = *input.Title
	}
	if input.Description != nil {
		promo.Description = *input.Description
	}
	if input.ImageURL != nil {
		promo.ImageURL = *input.ImageURL
	}
	if input.LinkURL != nil {
		promo.LinkURL = *input.LinkURL
	}
	if input.Target != nil {
		// a patch carrying only a new reference keeps the current target type
		target := *input.Target
		if target.Type == "" {
			target.Type = promo.Target.Type
		}
		promo.Target = target
	}
	if input.Value != nil {
		promo.Value = input.Value
	}
	if input.ValueType != nil {
		promo.ValueType = *input.ValueType
	}
	if input.Placements != nil {
		promo.Placements = *input.Placements
	}
	if input.Cities != nil {
		promo.Cities = normalizeCities(*input.Cities)
	}
	if input.Channels != nil {
		promo.Channels = *input.Channels
		if len(promo.Channels) == 0 {
			promo.Channels = entity.DefaultChannels()
		}
	}
	if input.Stacking != nil {
		promo.Stacking = *input.Stacking
	}
	if input.Order != nil {
		promo.Order = *input.Order
	}
	if input.MinQty != nil {
		promo.MinQty = input.MinQty
	}
	if input.MinOrderSubtotal != nil {
		promo.MinOrderSubtotal = input.MinOrderSubtotal
	}
	if input.MaxDiscountAmount != nil {
		promo.MaxDiscountAmount = input.MaxDiscountAmount
	}
	if input.StartDate != nil {
		promo.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		promo.EndDate = *input.EndDate
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
}

func normalizeCities(cities []string) []string {
	result := make([]string, 0, len(cities))
	for _, city := range cities {
		if city = strings.TrimSpace(city); city != "" {
			result = append(result, city)
		}
	}

	return result
}

// validatePromotion enforces the promotion invariants that do not need the store.
func validatePromotion(p *entity.Promotion) error {
	if !p.EndDate.After(p.StartDate) {
		return errors.WithStack(domainerrors.ErrInvalidDateRange)
	}

	if !p.Target.Type.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("target must be one of product, store, category"))
	}
	if strings.TrimSpace(p.Target.RefID) == "" {
		return errors.WithStack(domainerrors.ErrTargetRefMissing.WithDetails(p.Target.Type.String() + " reference is required"))
	}

	if len(p.Placements) == 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("at least one placement is required"))
	}
	for _, placement := range p.Placements {
		if !placement.IsValid() {
			return errors.WithStack(domainerrors.ErrInvalidPlacement.WithDetails(placement.String()))
		}
	}
	for _, channel := range p.Channels {
		if !channel.IsValid() {
			return errors.WithStack(domainerrors.ErrInvalidChannel.WithDetails(channel.String()))
		}
	}

	if !p.Stacking.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown stacking policy"))
	}

	if p.ValueType != "" {
		if !p.ValueType.IsValid() {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown value type"))
		}
		if p.Value == nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("value is required when value type is set"))
		}
	}
	if p.Value != nil && *p.Value < 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("value must not be negative"))
	}

	for name, amount := range map[string]*float64{
		"min order subtotal":  p.MinOrderSubtotal,
		"max discount amount": p.MaxDiscountAmount,
	} {
		if amount != nil && *amount < 0 {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must not be negative"))
		}
	}
	if p.MinQty != nil && *p.MinQty < 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("min qty must not be negative"))
	}

	return nil
}
