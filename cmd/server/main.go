package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "emops/internal/adapter/http"
	"emops/internal/adapter/postgres"
	"emops/internal/adapter/usecase"
	"emops/internal/config"
	"emops/internal/db"
	"emops/internal/queue"
)

// main loads configuration, optionally runs migrations and demo seeding,
// wires repositories, usecases and the recompute queue, then serves HTTP
// until a termination signal triggers graceful shutdown.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if err = cfg.Report.Validate(); err != nil {
		logger.Error("invalid default routing rate", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	shareRepo := postgres.NewShareLinkRepository(pool)

	campaigns := usecase.NewCampaignUseCase(campaignRepo, catalogRepo, cfg.Report.FallbackRate())
	reports := usecase.NewReportUseCase(campaignRepo, catalogRepo, shareRepo)

	var publisher httpadapter.RecomputePublisher
	if cfg.AMQP.URL != "" {
		q, err := queue.Dial(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			logger.Warn("recompute queue unavailable", slog.Any("error", err))
		} else {
			defer q.Close()
			publisher = q
		}
	}

	handler := httpadapter.NewHandler(campaigns, reports, publisher, cfg.Report.ShareTTL, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
