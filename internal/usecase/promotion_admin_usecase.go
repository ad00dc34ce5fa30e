package usecase

import (
	"context"
	"time"

	"promo/internal/domain/entity"
	"promo/internal/domain/repository"

	"github.com/google/uuid"
)

// CreatePromotionInput holds the fields of a new promotion
type CreatePromotionInput struct {
	Title       string
	Description string
	ImageURL    string
	LinkURL     string

	Target entity.Target

	Value     *float64
	ValueType entity.ValueType

	Placements entity.Placements
	Cities     []string
	Channels   entity.Channels // defaults to app

	Stacking entity.StackingPolicy // defaults to best
	Order    int

	MinQty            *int
	MinOrderSubtotal  *float64
	MaxDiscountAmount *float64

	StartDate time.Time
	EndDate   time.Time
	IsActive  *bool // defaults to true
}

// UpdatePromotionInput is a partial update; nil fields keep their current value
type UpdatePromotionInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	LinkURL     *string

	Target *entity.Target

	Value     *float64
	ValueType *entity.ValueType

	Placements *entity.Placements
	Cities     *[]string
	Channels   *entity.Channels

	Stacking *entity.StackingPolicy
	Order    *int

	MinQty            *int
	MinOrderSubtotal  *float64
	MaxDiscountAmount *float64

	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
}

// PromotionAdminUsecase defines the management operations used by the admin collaborator
type PromotionAdminUsecase interface {
	// CreatePromotion validates and stores a new promotion
	CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error)

	// UpdatePromotion applies a partial update under a row lock
	UpdatePromotion(ctx context.Context, id uuid.UUID, input *UpdatePromotionInput) (*entity.Promotion, error)

	// DeletePromotion soft-deletes a promotion
	DeletePromotion(ctx context.Context, id uuid.UUID) error

	// GetPromotion retrieves a promotion including its counters
	GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// ListPromotions lists promotions matching the filter
	ListPromotions(ctx context.Context, filter repository.ListFilter) ([]*entity.Promotion, error)
}
