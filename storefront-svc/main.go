package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"restrofi/config"
	"restrofi/logger"
	httpapi "restrofi/storefront-svc/internal/api/http"
	"restrofi/storefront-svc/internal/concierge"
	"restrofi/storefront-svc/internal/metrics"
	"restrofi/storefront-svc/internal/pin"
	"restrofi/storefront-svc/internal/service"
	"restrofi/storefront-svc/internal/session"
	"restrofi/storefront-svc/internal/storage"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "storefront-svc"}).
			Error(context.Background(), "config.load", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "storefront-svc stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	verifier, err := pin.NewBcryptVerifier(cfg.Staff.PIN)
	if err != nil {
		return err
	}

	if cfg.Concierge.APIKey == "" {
		log.Warn(ctx, "concierge api key not set, chat replies will fail", errors.New("missing CONCIERGE_API_KEY"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewStorefront(reg)

	publisher := storage.NewKafkaPublisher(writer)
	tokens := service.NewStaffTokens(cfg.Staff.TokenSecret, cfg.Staff.TokenTTL)
	gemini := concierge.NewGeminiClient(concierge.Config{
		APIKey:   cfg.Concierge.APIKey,
		Model:    cfg.Concierge.Model,
		Endpoint: cfg.Concierge.Endpoint,
	})
	menus := service.NewMenuService(repo, storage.NewRedisCache(rdb, cfg.Redis.MenuTTL), gemini, cfg.Concierge.ScanTimeout, log)

	sessions := service.NewSessionService(
		session.NewStore(),
		repo,
		menus,
		verifier,
		storage.NewAttemptLimiter(rdb, cfg.Staff.AttemptLimit, cfg.Staff.AttemptWindow),
		tokens,
		m,
		log,
		service.SessionConfig{
			PinResetDelay: cfg.Staff.ErrorResetWait,
			IdleTTL:       cfg.Session.IdleTTL,
			SweepInterval: cfg.Session.SweepInterval,
		},
	)

	handler := &httpapi.Handler{
		Sessions:  sessions,
		Menus:     menus,
		Orders:    service.NewOrderSubmitter(repo, publisher, cfg.Calls.Timeout, m, log),
		Dispatch:  service.NewServiceDispatcher(repo, publisher, cfg.Calls.Timeout, m, log),
		Concierge: service.NewConciergeService(gemini, cfg.Calls.Timeout, m, log),
		Staff: service.NewStaffService(
			repo,
			repo,
			repo,
			storage.NewRedisStats(rdb),
			publisher,
			service.TableQRGenerator{BaseURL: cfg.App.PublicBaseURL},
			cfg.App.Location(),
			log,
		),
		Tokens:   tokens,
		Log:      log,
		Gatherer: reg,
	}

	srv := httpapi.NewServer(":"+cfg.App.Port, httpapi.NewRouter(handler))
	log.Info(log.WithField(ctx, "addr", srv.Addr), "storefront-svc starting")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.StartServer(gctx, srv)
	})
	g.Go(func() error {
		return sessions.RunSweeper(gctx)
	})
	return g.Wait()
}
