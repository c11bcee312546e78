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

	"scratchcard-backend/internal/common/config"
	"scratchcard-backend/internal/common/logger"
	"scratchcard-backend/internal/common/metrics"
	adminservice "scratchcard-backend/internal/features/admin/service"
	"scratchcard-backend/internal/features/offer/seed"
	offerservice "scratchcard-backend/internal/features/offer/service"
	playservice "scratchcard-backend/internal/features/playcounter/service"
	apphttp "scratchcard-backend/internal/http"
	"scratchcard-backend/internal/storage/backend"
)

// @title           Scratch Card API
// @version         1.0
// @description     Weighted offer draws with per-offer redemption caps and a global play counter.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api/v1

// @securityDefinitions.apikey AdminToken
// @in header
// @name Authorization
// @description Bearer token configured with ADMIN_TOKEN

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data string of an admin user

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("scratchcard-backend", cfg.Debug)
	logger.Info().
		Bool("debug", cfg.Debug).
		Str("storage", cfg.Storage.Backend).
		Msg("Starting scratch card backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seeds, err := loadSeeds(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load seed catalog")
	}

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open state store")
	}
	defer store.Close()

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}

	catalog := offerservice.NewCatalogService(store,
		offerservice.WithLogger(logger.Component("catalog")),
		offerservice.WithMetrics(recorder),
	)
	plays := playservice.NewPlayCounterService(store,
		playservice.WithLogger(logger.Component("play_counter")),
		playservice.WithMetrics(recorder),
	)
	admin := adminservice.NewAdminService(catalog, plays, seeds, logger.Component("admin"), recorder)

	if _, err := catalog.SeedIfAbsent(ctx, seeds); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed offer catalog")
	}
	if err := plays.InitIfAbsent(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize play counter")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apphttp.NewRouter(apphttp.Deps{
		Config:  cfg,
		Catalog: catalog,
		Plays:   plays,
		Admin:   admin,
		Store:   store,
		Metrics: recorder,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func loadSeeds(cfg *config.Config) (seed.Static, error) {
	if cfg.Catalog.SeedFile == "" {
		return seed.Default(), nil
	}
	seeds, err := seed.LoadFile(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("file", cfg.Catalog.SeedFile).
		Int("offers", len(seeds)).
		Msg("Seed catalog loaded")
	return seeds, nil
}
