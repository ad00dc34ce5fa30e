// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"promo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PromotionHandler      *handler.PromotionHandler
	AdminPromotionHandler *handler.AdminPromotionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	promotionHandler      *handler.PromotionHandler
	adminPromotionHandler *handler.AdminPromotionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		promotionHandler:      params.PromotionHandler,
		adminPromotionHandler: params.AdminPromotionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public promotion routes consumed by the client apps
	promotionsGroup := apiV1.Group("/promotions")
	{
		promotionsGroup.GET("/by-placement", r.promotionHandler.GetByPlacement)
		promotionsGroup.POST("/quote", r.promotionHandler.Quote)
		promotionsGroup.POST("/:id/click", r.promotionHandler.RecordClick)
		promotionsGroup.POST("/:id/conversion", r.promotionHandler.RecordConversion)
		promotionsGroup.GET("/:id/qr", r.promotionHandler.GetQRCode)
	}

	// Admin routes; access control sits in front of this service
	adminGroup := apiV1.Group("/admin/promotions")
	{
		adminGroup.POST("", r.adminPromotionHandler.CreatePromotion)
		adminGroup.GET("", r.adminPromotionHandler.ListPromotions)
		adminGroup.GET("/:id", r.adminPromotionHandler.GetPromotion)
		adminGroup.PATCH("/:id", r.adminPromotionHandler.UpdatePromotion)
		adminGroup.DELETE("/:id", r.adminPromotionHandler.DeletePromotion)
	}
}
