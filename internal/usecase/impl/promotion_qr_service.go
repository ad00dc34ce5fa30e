package impl

import (
	"context"
	"log/slog"

	deliverycontext "promo/internal/delivery/context"
	"promo/internal/domain/repository"
	"promo/internal/domain/service"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type promotionQRService struct {
	promotionRepo repository.PromotionRepository
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// PromotionQRServiceParams holds dependencies for PromotionQRService, injected by Fx.
type PromotionQRServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	QRService     service.QRCodeService
	Logger        *slog.Logger
}

// NewPromotionQRService creates the promotion QR code service.
func NewPromotionQRService(params PromotionQRServiceParams) usecase.PromotionQRUsecase {
	return &promotionQRService{
		promotionRepo: params.PromotionRepo,
		qrService:     params.QRService,
		logger:        params.Logger,
	}
}

// GetPromotionQR renders the promotion's deep link as a PNG QR code.
func (srv *promotionQRService) GetPromotionQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	promo, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPromotionError(err, "failed to load promotion for qr code")
	}

	png, err := srv.qrService.GeneratePromotionQR(promo)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to generate promotion QR code",
			slog.String("promotionID", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate promotion qr code")
	}

	return png, nil
}
