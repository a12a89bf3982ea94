package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restrofi/agg-svc/internal/service"
	"restrofi/agg-svc/internal/storage"
	"restrofi/config"
	"restrofi/logger"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAggregator()
	if err != nil {
		logger.New(logger.Options{ServiceName: "agg-svc"}).
			Error(context.Background(), "config.load", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.ServiceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb, cfg.Location()), log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Start(gctx)
	})
	if err := g.Wait(); err != nil {
		log.Error(ctx, "agg-svc stopped", err)
		os.Exit(1)
	}
	log.Info(ctx, "agg-svc stopped")
}
