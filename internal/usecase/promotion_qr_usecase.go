package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PromotionQRUsecase renders shareable QR codes for promotions
type PromotionQRUsecase interface {
	// GetPromotionQR returns a PNG QR code for the promotion's deep link
	GetPromotionQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
