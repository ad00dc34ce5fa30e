package usecase

import (
	"context"

	"promo/internal/domain/entity"
	"promo/internal/domain/promotion"
)

// QuoteInput describes an order to price against the promotions of a placement
type QuoteInput struct {
	ResolveInput

	OrderSubtotal float64
	ItemQty       *int
	// Targets restricts the quote to promotions priced on these cart entities. Empty means no restriction.
	Targets []entity.Target
}

// Quote is the discount breakdown for an order
type Quote struct {
	Subtotal      float64             `json:"subtotal"`
	TotalDiscount float64             `json:"total_discount"`
	Groups        promotion.Selection `json:"groups"`
}

// QuoteUsecase prices an order against the promotions eligible for it
type QuoteUsecase interface {
	Quote(ctx context.Context, input QuoteInput) (*Quote, error)
}
