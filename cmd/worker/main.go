package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"emops/internal/adapter/postgres"
	"emops/internal/adapter/usecase"
	"emops/internal/config"
	"emops/internal/db"
	"emops/internal/queue"
)

// main runs the recompute worker: it consumes catalog-change events from
// the broker and re-derives every campaign row of the named client against
// the current catalog snapshot and rate table.
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	campaigns := usecase.NewCampaignUseCase(
		postgres.NewCampaignRepository(pool),
		postgres.NewCatalogRepository(pool),
		cfg.Report.FallbackRate(),
	)

	q, err := queue.Dial(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		logger.Error("queue connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer q.Close()

	go func() {
		<-ctx.Done()
		q.Close()
	}()

	logger.Info("worker consuming", slog.String("queue", cfg.AMQP.Queue))
	err = q.Consume(logger, func(ev queue.RecomputeEvent) error {
		n, err := campaigns.Recompute(ctx, ev.Client)
		if err != nil {
			return err
		}
		logger.Info("client recomputed", slog.String("client", ev.Client), slog.Int("rows", n))
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Error("consume error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
