package api

import (
	"net/http"

	"ecoport-backend/internal/api/middleware"
	"ecoport-backend/internal/modules/auth"
	"ecoport-backend/internal/modules/drivers"
	"ecoport-backend/internal/modules/pickups"
	"ecoport-backend/internal/modules/pricing"
	"ecoport-backend/internal/modules/ratings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	jwtSecret string,
	authHandler *auth.Handler,
	pickupHandler *pickups.Handler,
	driverHandler *drivers.Handler,
	ratingHandler *ratings.Handler,
	pricingHandler *pricing.Handler,
) {
	adminAuth := middleware.AdminAuth(jwtSecret)
	adminRequired := middleware.AdminRequired()

	api := e.Group("/api")

	// --- Public Routes ---
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "EcoPort API - Waste Pickup Logistics", "version": "1.0.0"})
	})
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, adminAuth, adminRequired)

	// --- Pickup Requests ---
	pickupGroup := api.Group("/pickup-requests")
	{
		pickupGroup.POST("", pickupHandler.CreatePickup)
		pickupGroup.GET("", pickupHandler.ListPickups)
		pickupGroup.GET("/:requestId", pickupHandler.GetPickup)
		pickupGroup.PUT("/:requestId", pickupHandler.UpdatePickup, adminAuth, adminRequired)
		pickupGroup.POST("/:requestId/assign-driver", pickupHandler.AssignDriver, adminAuth, adminRequired)
	}

	// --- Drivers ---
	driverGroup := api.Group("/drivers")
	{
		driverGroup.POST("", driverHandler.CreateDriver, adminAuth, adminRequired)
		driverGroup.GET("", driverHandler.ListDrivers)
		driverGroup.GET("/:driverId", driverHandler.GetDriver)
		driverGroup.PUT("/:driverId/status", driverHandler.UpdateDriverStatus, adminAuth, adminRequired)
	}

	// --- Ratings (customer-facing, no auth) ---
	api.POST("/ratings", ratingHandler.CreateRating)
	api.GET("/ratings/:pickupId", ratingHandler.GetRating)

	// --- Dashboard & Pricing ---
	api.GET("/stats", pickupHandler.GetStats)
	api.POST("/calculate-cost", pricingHandler.PreviewCost)

	// --- Observability ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
