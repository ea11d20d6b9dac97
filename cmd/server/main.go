package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/database"
	"github.com/harmonia/academy-backend/internal/gateway"
	"github.com/harmonia/academy-backend/internal/handler"
	"github.com/harmonia/academy-backend/internal/logger"
	"github.com/harmonia/academy-backend/internal/repository"
	"github.com/harmonia/academy-backend/internal/router"
	"github.com/harmonia/academy-backend/internal/service"
	"github.com/harmonia/academy-backend/internal/validator"
	"github.com/harmonia/academy-backend/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("finalizer", string(cfg.FinalizerMode)).
		Msg("Starting Harmonia Academy Server")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	classRepo := repository.NewClassRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	tokenService := service.NewTokenService(cfg)
	catalogService := service.NewCatalogService(classRepo, rdb, cfg, log)
	userService := service.NewUserService(userRepo)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(cfg, pool, paymentRepo, classRepo, cartRepo, stripeGateway, rdb, log)
	enrollmentService := service.NewEnrollmentService(paymentRepo)

	handlers := &router.Handlers{
		Token:   handler.NewTokenHandler(tokenService),
		Class:   handler.NewClassHandler(catalogService),
		User:    handler.NewUserHandler(userService),
		Cart:    handler.NewCartHandler(cartService),
		Payment: handler.NewPaymentHandler(paymentService, enrollmentService),
		Monitor: handler.NewMonitorHandler(rdb, log, cfg.AllowedOrigins),
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	reconcileWorker := worker.NewReconcileWorker(pool, log, cfg.ReconcileInterval)
	go reconcileWorker.Start(workerCtx)

	r := router.SetupRouter(tokenService, handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
