package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/portside-erp/portside-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, dashboardHandler *DashboardHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(authMiddleware.Authenticate())
	dashboard.Use(middleware.RateLimitMiddleware(rateLimiter))
	dashboard.GET("/stats", dashboardHandler.GetStats)
}
