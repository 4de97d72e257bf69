package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/omnimindia-api/internal/api/http"
	"github.com/spec-kit/omnimindia-api/internal/api/http/handlers"
	"github.com/spec-kit/omnimindia-api/internal/config"
	"github.com/spec-kit/omnimindia-api/internal/notifier"
	"github.com/spec-kit/omnimindia-api/internal/observability"
	"github.com/spec-kit/omnimindia-api/internal/persistence"
	"github.com/spec-kit/omnimindia-api/internal/ratelimit"
	"github.com/spec-kit/omnimindia-api/internal/repository"
	"github.com/spec-kit/omnimindia-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var limiterStore ratelimit.Store = ratelimit.NewMemoryStore()
	if redis.Configured() {
		limiterStore = ratelimit.NewRedisStore(redis.Client)
	}
	limiter := ratelimit.NewLimiter(limiterStore, cfg.RateLimit.Max, cfg.RateLimit.Window(), logger)

	contactNotifier := notifier.New(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		logger.Info("smtp not configured; contact notifications disabled")
	}

	contactRepo := repository.NewContactRepository(pg.PoolHandle())
	contactService := service.NewContactService(contactRepo, contactNotifier, logger)
	marketService := service.NewMarketService()

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Root:        handlers.NewRootHandler("OmniMindia API", cfg.App.Version),
		Health:      handlers.NewHealthHandler(pg, redis),
		Stats:       handlers.NewStatsHandler(marketService),
		Contact:     handlers.NewContactHandler(contactService),
		ContactGate: httptransport.RateLimitMiddleware(limiter),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
