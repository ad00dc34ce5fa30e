// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"promo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for promotion persistence.
var (
	// ErrPromotionNotFound is returned when a promotion does not exist or was deleted.
	ErrPromotionNotFound = errors.New("promotion not found")
	// ErrInvalidPromotion is returned when the store rejects a row that breaks a table constraint.
	ErrInvalidPromotion = errors.New("promotion violates a storage constraint")
)

// CandidateFilter narrows FindCandidates to promotions that may be eligible for one business day.
type CandidateFilter struct {
	Placement entity.Placement
	City      string         // empty: only city-agnostic promotions
	Channel   entity.Channel // empty: any channel
	DayStart  time.Time
	DayEnd    time.Time
}

// ListFilter narrows the admin listing. Nil fields are ignored.
type ListFilter struct {
	Placement  *entity.Placement
	TargetType *entity.TargetType
	IsActive   *bool
}

// PromotionRepository defines the interface for promotion-related database operations.
type PromotionRepository interface {
	// FindByID retrieves a promotion by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// FindByIDForUpdate retrieves a promotion and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// List retrieves promotions matching the filter, ordered for display.
	List(ctx context.Context, filter ListFilter) ([]*entity.Promotion, error)

	// FindCandidates retrieves active promotions that may be shown in the given scope and day,
	// ordered by ascending order then newest first.
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]*entity.Promotion, error)

	// Create persists a new promotion and fills in its generated fields.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// Update writes the content columns of an existing promotion. Counters are left untouched.
	Update(ctx context.Context, promotion *entity.Promotion) error

	// Delete removes a promotion by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews adds one view to every listed promotion in a single statement.
	IncrementViews(ctx context.Context, ids []uuid.UUID) error

	// IncrementClicks adds one click to the promotion.
	IncrementClicks(ctx context.Context, id uuid.UUID) error

	// IncrementConversions adds one conversion to the promotion.
	IncrementConversions(ctx context.Context, id uuid.UUID) error
}
