package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"promo/internal/delivery/api/response"
	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/repository"
	"promo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminPromotionHandlerParams holds dependencies for AdminPromotionHandler, injected by Fx.
type AdminPromotionHandlerParams struct {
	fx.In

	AdminUC usecase.PromotionAdminUsecase
	Logger  *slog.Logger
}

// AdminPromotionHandler serves the promotion management endpoints
type AdminPromotionHandler struct {
	adminUC usecase.PromotionAdminUsecase
	logger  *slog.Logger
}

// NewAdminPromotionHandler is the constructor for AdminPromotionHandler
func NewAdminPromotionHandler(params AdminPromotionHandlerParams) *AdminPromotionHandler {
	return &AdminPromotionHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreatePromotionRequest represents the request body for creating a promotion
type CreatePromotionRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"image" validate:"omitempty,url"`
	LinkURL     string `json:"link" validate:"omitempty,max=2048"`

	TargetType string `json:"target" validate:"required,target"`
	TargetRef  string `json:"target_ref_id"`

	Value     *float64 `json:"value" validate:"omitempty,gte=0"`
	ValueType string   `json:"value_type" validate:"omitempty,value_type"`

	Placements []string `json:"placements" validate:"required,min=1,dive,placement"`
	Cities     []string `json:"cities" validate:"omitempty,dive,required,max=100"`
	Channels   []string `json:"channels" validate:"omitempty,dive,channel"`

	Stacking string `json:"stacking" validate:"omitempty,stacking"`
	Order    int    `json:"order"`

	MinQty            *int     `json:"min_qty" validate:"omitempty,gte=0"`
	MinOrderSubtotal  *float64 `json:"min_order_subtotal" validate:"omitempty,gte=0"`
	MaxDiscountAmount *float64 `json:"max_discount_amount" validate:"omitempty,gte=0"`

	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	IsActive  *bool     `json:"is_active"`
}

// UpdatePromotionRequest represents a partial update; absent fields are left untouched
type UpdatePromotionRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image" validate:"omitempty,url"`
	LinkURL     *string `json:"link" validate:"omitempty,max=2048"`

	TargetType *string `json:"target" validate:"omitempty,target"`
	TargetRef  *string `json:"target_ref_id"`

	Value     *float64 `json:"value" validate:"omitempty,gte=0"`
	ValueType *string  `json:"value_type" validate:"omitempty,value_type"`

	Placements *[]string `json:"placements" validate:"omitempty,min=1,dive,placement"`
	Cities     *[]string `json:"cities" validate:"omitempty,dive,required,max=100"`
	Channels   *[]string `json:"channels" validate:"omitempty,min=1,dive,channel"`

	Stacking *string `json:"stacking" validate:"omitempty,stacking"`
	Order    *int    `json:"order"`

	MinQty            *int     `json:"min_qty" validate:"omitempty,gte=0"`
	MinOrderSubtotal  *float64 `json:"min_order_subtotal" validate:"omitempty,gte=0"`
	MaxDiscountAmount *float64 `json:"max_discount_amount" validate:"omitempty,gte=0"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  *bool      `json:"is_active"`
}

// ListPromotionsRequest holds the optional list filters
type ListPromotionsRequest struct {
	Placement  string `query:"placement" validate:"omitempty,placement"`
	TargetType string `query:"target" validate:"omitempty,target"`
	IsActive   string `query:"is_active" validate:"omitempty,boolean"`
}

// CreatePromotion handles promotion creation
func (h *AdminPromotionHandler) CreatePromotion(c echo.Context) error {
	var req CreatePromotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid promotion input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	promotion, err := h.adminUC.CreatePromotion(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, promotion)
}

// ListPromotions lists promotions with optional filters
func (h *AdminPromotionHandler) ListPromotions(c echo.Context) error {
	var req ListPromotionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid list query")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	var filter repository.ListFilter
	if req.IsActive != "" {
		isActive, _ := strconv.ParseBool(req.IsActive)
		filter.IsActive = &isActive
	}
	if req.Placement != "" {
		placement := entity.Placement(req.Placement)
		filter.Placement = &placement
	}
	if req.TargetType != "" {
		targetType := entity.TargetType(req.TargetType)
		filter.TargetType = &targetType
	}

	promotions, err := h.adminUC.ListPromotions(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

// GetPromotion returns a single promotion including its counters
func (h *AdminPromotionHandler) GetPromotion(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	promotion, err := h.adminUC.GetPromotion(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// UpdatePromotion applies a partial update
func (h *AdminPromotionHandler) UpdatePromotion(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req UpdatePromotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid promotion input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	promotion, err := h.adminUC.UpdatePromotion(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// DeletePromotion soft-deletes a promotion
func (h *AdminPromotionHandler) DeletePromotion(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.adminUC.DeletePromotion(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *CreatePromotionRequest) toInput() *usecase.CreatePromotionInput {
	return &usecase.CreatePromotionInput{
		Title:             r.Title,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
		LinkURL:           r.LinkURL,
		Target:            entity.Target{Type: entity.TargetType(r.TargetType), RefID: r.TargetRef},
		Value:             r.Value,
		ValueType:         entity.ValueType(r.ValueType),
		Placements:        toPlacements(r.Placements),
		Cities:            r.Cities,
		Channels:          toChannels(r.Channels),
		Stacking:          entity.StackingPolicy(r.Stacking),
		Order:             r.Order,
		MinQty:            r.MinQty,
		MinOrderSubtotal:  r.MinOrderSubtotal,
		MaxDiscountAmount: r.MaxDiscountAmount,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		IsActive:          r.IsActive,
	}
}

func (r *UpdatePromotionRequest) toInput() *usecase.UpdatePromotionInput {
	input := &usecase.UpdatePromotionInput{
		Title:             r.Title,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
		LinkURL:           r.LinkURL,
		Value:             r.Value,
		Cities:            r.Cities,
		Order:             r.Order,
		MinQty:            r.MinQty,
		MinOrderSubtotal:  r.MinOrderSubtotal,
		MaxDiscountAmount: r.MaxDiscountAmount,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		IsActive:          r.IsActive,
	}

	if r.TargetType != nil || r.TargetRef != nil {
		target := entity.Target{}
		if r.TargetType != nil {
			target.Type = entity.TargetType(*r.TargetType)
		}
		if r.TargetRef != nil {
			target.RefID = *r.TargetRef
		}
		input.Target = &target
	}

	if r.ValueType != nil {
		valueType := entity.ValueType(*r.ValueType)
		input.ValueType = &valueType
	}

	if r.Placements != nil {
		placements := toPlacements(*r.Placements)
		input.Placements = &placements
	}

	if r.Channels != nil {
		channels := toChannels(*r.Channels)
		input.Channels = &channels
	}

	if r.Stacking != nil {
		stacking := entity.StackingPolicy(*r.Stacking)
		input.Stacking = &stacking
	}

	return input
}

func toPlacements(values []string) entity.Placements {
	placements := make(entity.Placements, 0, len(values))
	for _, v := range values {
		placements = append(placements, entity.Placement(v))
	}

	return placements
}

func toChannels(values []string) entity.Channels {
	if len(values) == 0 {
		return nil
	}

	channels := make(entity.Channels, 0, len(values))
	for _, v := range values {
		channels = append(channels, entity.Channel(v))
	}

	return channels
}
