package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/config"
	"github.com/maxviazov/cricket-stats-service/internal/handler"
	"github.com/maxviazov/cricket-stats-service/internal/logger"
	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/internal/store"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pick the match document source
	var src store.Source
	switch cfg.Store.Source {
	case "postgres":
		if cfg.Store.Postgres.Migrate {
			if err := store.Migrate(ctx, cfg.Store.Postgres, appLogger); err != nil {
				appLogger.Fatal().Err(err).Msg("❌ Database migration failed")
			}
		}
		pg, err := store.NewPostgresSource(ctx, cfg.Store.Postgres, appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("❌ Postgres connection failed")
		}
		defer pg.Close()
		src = pg
	default:
		src = store.NewFileSource(cfg.Store.DataDir)
	}

	matchStore := store.New()
	loader := store.NewLoader(matchStore, src, cfg.Store.Workers, cfg.Store.MaxFiles, appLogger)
	if err := loader.Start(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Initial data load failed to start")
	}

	playerSvc := service.NewPlayerService(matchStore, appLogger)
	compareSvc := service.NewComparisonService(matchStore, appLogger)
	teamSvc := service.NewTeamService(matchStore, appLogger)
	venueSvc := service.NewVenueService(matchStore, appLogger)
	metaSvc := service.NewMetaService(matchStore, loader, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, matchStore, playerSvc, compareSvc, teamSvc, venueSvc, metaSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: engine,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("❌ HTTP server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("✅ Server stopped cleanly")
}
