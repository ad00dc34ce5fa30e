package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"promo/internal/domain/entity"
	"promo/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const qrTypePromotion = "promotion"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PromotionID string `json:"promotion_id"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is used to build a deep link for promotions without their own link.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePromotionQR generates a PNG QR code for the promotion
func (s *qrcodeService) GeneratePromotionQR(promotion *entity.Promotion) ([]byte, error) {
	jsonData, err := json.Marshal(s.payload(promotion))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func (s *qrcodeService) payload(promotion *entity.Promotion) QRCodeData {
	data := QRCodeData{
		PromotionID: promotion.ID.String(),
		Type:        qrTypePromotion,
		Link:        promotion.LinkURL,
	}

	if data.Link == "" && s.baseURL != "" {
		data.Link = s.baseURL + "/promotions/" + data.PromotionID
	}

	return data
}
