package service

import (
	"promo/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePromotionQR generates a PNG QR code that deep-links to the promotion
	GeneratePromotionQR(promotion *entity.Promotion) ([]byte, error)
}
