// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"promo/internal/delivery/api/response"
	"promo/internal/delivery/api/validator"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PlacementUC  usecase.PlacementUsecase
	EngagementUC usecase.EngagementUsecase
	QuoteUC      usecase.QuoteUsecase
	QRUC         usecase.PromotionQRUsecase
	Logger       *slog.Logger
}

// PromotionHandler serves the public promotion endpoints
type PromotionHandler struct {
	placementUC  usecase.PlacementUsecase
	engagementUC usecase.EngagementUsecase
	quoteUC      usecase.QuoteUsecase
	qrUC         usecase.PromotionQRUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		placementUC:  params.PlacementUC,
		engagementUC: params.EngagementUC,
		quoteUC:      params.QuoteUC,
		qrUC:         params.QRUC,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// ByPlacementRequest holds the query parameters of a placement lookup
type ByPlacementRequest struct {
	Placement string `query:"placement" validate:"required,placement"`
	City      string `query:"city" validate:"max=100"`
	Channel   string `query:"channel" validate:"omitempty,channel"`
}

// TargetRequest identifies a priced cart entity
type TargetRequest struct {
	Type  string `json:"type" validate:"required,target"`
	RefID string `json:"ref_id" validate:"required"`
}

// QuoteRequest represents the request body of a discount quote
type QuoteRequest struct {
	Placement     string          `json:"placement" validate:"required,placement"`
	City          string          `json:"city" validate:"max=100"`
	Channel       string          `json:"channel" validate:"omitempty,channel"`
	OrderSubtotal float64         `json:"order_subtotal" validate:"gte=0"`
	ItemQty       *int            `json:"item_qty" validate:"omitempty,gte=0"`
	Targets       []TargetRequest `json:"targets" validate:"omitempty,dive"`
}

// AckResponse acknowledges a recorded engagement
type AckResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// GetByPlacement resolves the promotions to render in a placement
func (h *PromotionHandler) GetByPlacement(c echo.Context) error {
	var req ByPlacementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid placement query")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	promotions, err := h.placementUC.Resolve(c.Request().Context(), usecase.ResolveInput{
		Placement: entity.Placement(req.Placement),
		City:      req.City,
		Channel:   entity.Channel(req.Channel),
		Now:       h.now(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

// RecordClick counts a click on a promotion
func (h *PromotionHandler) RecordClick(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.engagementUC.RecordClick(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AckResponse{Acknowledged: true})
}

// RecordConversion counts a conversion attributed to a promotion
func (h *PromotionHandler) RecordConversion(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.engagementUC.RecordConversion(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AckResponse{Acknowledged: true})
}

// Quote prices an order against the promotions of a placement
func (h *PromotionHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	targets := make([]entity.Target, 0, len(req.Targets))
	for _, t := range req.Targets {
		targets = append(targets, entity.Target{Type: entity.TargetType(t.Type), RefID: t.RefID})
	}

	quote, err := h.quoteUC.Quote(c.Request().Context(), usecase.QuoteInput{
		ResolveInput: usecase.ResolveInput{
			Placement: entity.Placement(req.Placement),
			City:      req.City,
			Channel:   entity.Channel(req.Channel),
			Now:       h.now(),
		},
		OrderSubtotal: req.OrderSubtotal,
		ItemQty:       req.ItemQty,
		Targets:       targets,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// GetQRCode returns a PNG QR code for the promotion
func (h *PromotionHandler) GetQRCode(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	png, err := h.qrUC.GetPromotionQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// invalidID answers an id that cannot name a stored promotion.
func invalidID(c echo.Context) error {
	return response.NotFound(c, domainerrors.ErrPromotionNotFound.ErrorCode(), domainerrors.ErrPromotionNotFound.Message())
}

func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validator.Details(err))
}
