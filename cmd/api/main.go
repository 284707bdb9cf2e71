package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoport-backend/internal/api"
	"ecoport-backend/internal/config"
	"ecoport-backend/internal/modules/auth"
	"ecoport-backend/internal/modules/drivers"
	"ecoport-backend/internal/modules/pickups"
	"ecoport-backend/internal/modules/pricing"
	"ecoport-backend/internal/modules/ratings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Database Connection ---
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database configuration: %v", err)
	}

	dbConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	dbPool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	e.Logger.Info("Successfully connected to the database!")

	// 4. --- Dependency Injection (Wiring everything up) ---
	pricer := pricing.NewEngine(cfg.Pricing)
	pricingHandler := pricing.NewHandler(pricer)

	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(authService)

	pickupRepo := pickups.NewRepository(dbPool)
	pickupService := pickups.NewService(pickupRepo, pricer, cfg.MaxImageBytes)
	pickupHandler := pickups.NewHandler(pickupService)

	driverRepo := drivers.NewRepository(dbPool)
	driverService := drivers.NewService(driverRepo)
	driverHandler := drivers.NewHandler(driverService)

	ratingRepo := ratings.NewRepository(dbPool)
	ratingService := ratings.NewService(ratingRepo, pickupService)
	ratingHandler := ratings.NewHandler(ratingService)

	// 5. --- Initialize Router ---
	api.SetupRoutes(e, cfg.JWTSecret,
		authHandler,
		pickupHandler,
		driverHandler,
		ratingHandler,
		pricingHandler,
	)

	// 6. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server, an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
