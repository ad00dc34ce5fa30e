package router

import (
	"net/http"
	"testing"

	"promo/internal/delivery/api/router/handler"
	mockusecase "promo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	r := NewRouter(RouterParams{
		PromotionHandler: handler.NewPromotionHandler(handler.PromotionHandlerParams{
			PlacementUC:  mockusecase.NewMockPlacementUsecase(t),
			EngagementUC: mockusecase.NewMockEngagementUsecase(t),
			QuoteUC:      mockusecase.NewMockQuoteUsecase(t),
			QRUC:         mockusecase.NewMockPromotionQRUsecase(t),
		}),
		AdminPromotionHandler: handler.NewAdminPromotionHandler(handler.AdminPromotionHandlerParams{
			AdminUC: mockusecase.NewMockPromotionAdminUsecase(t),
		}),
	})
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /health",
		http.MethodGet + " /api/v1/promotions/by-placement",
		http.MethodPost + " /api/v1/promotions/quote",
		http.MethodPost + " /api/v1/promotions/:id/click",
		http.MethodPost + " /api/v1/promotions/:id/conversion",
		http.MethodGet + " /api/v1/promotions/:id/qr",
		http.MethodPost + " /api/v1/admin/promotions",
		http.MethodGet + " /api/v1/admin/promotions",
		http.MethodGet + " /api/v1/admin/promotions/:id",
		http.MethodPatch + " /api/v1/admin/promotions/:id",
		http.MethodDelete + " /api/v1/admin/promotions/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
