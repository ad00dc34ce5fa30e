package handler

import (
	"log/slog"
	"net/http"
	"time"

	"promo/config"
	"promo/internal/domain/promotion"
	"promo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// RollupHandlerParams holds dependencies for the RollupHandler
type RollupHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Rollup service.EngagementRollup
}

// RollupHandler exposes the per-day engagement rollup
type RollupHandler struct {
	offsetHours int
	logger      *slog.Logger
	rollup      service.EngagementRollup
	now         func() time.Time
}

// NewRollupHandler creates a new rollup read handler
func NewRollupHandler(params RollupHandlerParams) *RollupHandler {
	return &RollupHandler{
		offsetHours: params.Config.PromotionSettings().BusinessDayOffsetHours,
		logger:      params.Logger,
		rollup:      params.Rollup,
		now:         time.Now,
	}
}

// RollupResponse is the engagement of one promotion on one business day
type RollupResponse struct {
	PromotionID string `json:"promotion_id"`
	Date        string `json:"date"`
	service.EngagementCounts
}

// GetRollup returns the counts for ?date=YYYY-MM-DD, defaulting to the current business day
func (h *RollupHandler) GetRollup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid promotion id")
	}

	date := c.QueryParam("date")
	if date == "" {
		date = promotion.BusinessDayOf(h.now(), h.offsetHours).Date()
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	counts, err := h.rollup.Counts(c.Request().Context(), id.String(), date)
	if err != nil {
		h.logger.Error("[Worker] Failed to read engagement rollup", slog.Any("error", err))

		return echo.NewHTTPError(http.StatusServiceUnavailable, "rollup unavailable")
	}

	return c.JSON(http.StatusOK, RollupResponse{
		PromotionID:      id.String(),
		Date:             date,
		EngagementCounts: counts,
	})
}
