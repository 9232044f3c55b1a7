// Package main is the entry point for the Rove Rewards redemption optimizer service.
//
//	@title						Rove Rewards Redemption Optimizer API
//	@version					1.0.0
//	@description				Synthesizes and ranks airline miles redemption options, including routes through partner hubs, and serves the static About and Feedback pages.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/rove-rewards/redemption-optimizer/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/rove-rewards/redemption-optimizer/docs"

	"github.com/rove-rewards/redemption-optimizer/internal/adapter/feedback"
	redemptionhttp "github.com/rove-rewards/redemption-optimizer/internal/adapter/http"
	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/middleware"
	"github.com/rove-rewards/redemption-optimizer/internal/config"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/random"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(cfg.LoggerConfig())
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.App.Timezone).
		Bool("seeded", cfg.Synthesizer.Seed != 0).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = redemptionhttp.HTTPErrorHandler
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.SetupWithOptions(e, log.Logger, middleware.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Recovery:       middleware.DefaultRecoveryConfig(),
	})

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log, cfg.Server.ShutdownTimeout)
}

// setupRoutes builds the application layers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	synthesizer := usecase.NewSynthesizer(random.NewSource(cfg.Synthesizer.Seed))
	redemptions := usecase.NewRedemptionSearchUseCase(synthesizer)

	sink := feedback.NewLogSink(log)
	feedbackUseCase := usecase.NewFeedbackUseCase(sink, timeutil.NewRealClock())

	handler := redemptionhttp.NewHandler(redemptions, feedbackUseCase, cfg.Location())
	redemptionhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
