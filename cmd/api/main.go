package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shayangolmezerji/ChargeAPI/internal/config"
	"github.com/shayangolmezerji/ChargeAPI/internal/handler"
	"github.com/shayangolmezerji/ChargeAPI/internal/middleware"
	"github.com/shayangolmezerji/ChargeAPI/internal/service"
	"github.com/shayangolmezerji/ChargeAPI/pkg/chargereseller"
)

// main is the application entrypoint for the charge relay API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting charge api")

	// A missing web-service ID is not fatal at startup; /charge reports it
	// per request. Warn so operators notice early.
	if cfg.Reseller.Validate() != nil {
		log.Warn().Msg("CHARGE_RESELLER_WEB_ID is not set - charge requests will fail until it is configured")
	}

	// 3. Initialize reseller client
	resellerClient := chargereseller.NewClient(chargereseller.Config{
		BaseURL:      cfg.Reseller.BaseURL,
		WebServiceID: cfg.Reseller.WebServiceID,
		RedirectURL:  cfg.Reseller.RedirectURL,
		Timeout:      cfg.Reseller.Timeout,
	})

	// 4. Initialize services
	chargeSvc := service.NewChargeService(resellerClient, &cfg.Reseller)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health: handler.NewHealthHandler(&cfg.Reseller),
		Charge: handler.NewChargeHandler(chargeSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health *handler.HealthHandler
	Charge *handler.ChargeHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)
	router.POST("/charge", handlers.Charge.CreateCharge)
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
