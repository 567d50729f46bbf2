package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/config"
	handler "github.com/JuanoBQ/eCommerce-Template-sub001/internal/handler/http"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage"
	filebackend "github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage/file"
	pgbackend "github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage/postgres"
	redisbackend "github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage/redis"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/store"
	"github.com/JuanoBQ/eCommerce-Template-sub001/pkg/health"
)

// App wires together all dependencies and runs the state daemon.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	rdb        *redis.Client
	pool       *pgxpool.Pool
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	backend, healthHandler, err := app.initBackend(ctx)
	if err != nil {
		return nil, err
	}

	// The notice fan-out feeds the SSE toast stream; every notice is also
	// written to the structured log.
	hub := notify.NewHub(cfg.NoticeBuffer)
	notifier := notify.Multi{notify.NewLogNotifier(logger), hub}

	// Stores reconstruct their state from the backend; a missing or
	// unreadable persisted state starts empty.
	cartStore := store.NewCartStore(ctx, backend, notifier, logger)
	wishlistStore := store.NewWishlistStore(ctx, backend, notifier, logger)
	logger.Info("stores initialized",
		slog.String("backend", cfg.StorageBackend),
		slog.Int("cart_items", cartStore.TotalItems()),
		slog.Int("wishlist_items", wishlistStore.Count()),
	)

	router := handler.NewRouter(cartStore, wishlistStore, hub, healthHandler, logger)

	// No WriteTimeout: the SSE change feed holds its response open for the
	// lifetime of the consuming view.
	app.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	return app, nil
}

// initBackend builds the configured storage backend and its health checks.
func (a *App) initBackend(ctx context.Context) (storage.Backend, *health.Handler, error) {
	healthHandler := health.NewHandler()

	switch a.cfg.StorageBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     a.cfg.RedisAddr,
			Password: a.cfg.RedisPass,
			DB:       a.cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.rdb = rdb
		a.logger.Info("connected to Redis",
			slog.String("addr", a.cfg.RedisAddr),
			slog.Int("db", a.cfg.RedisDB),
		)

		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})

		ttl := time.Duration(a.cfg.StateTTL) * time.Hour
		return redisbackend.New(rdb, ttl), healthHandler, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, a.cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		a.pool = pool
		a.logger.Info("connected to PostgreSQL")

		backend := pgbackend.New(pool)
		if err := backend.Init(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("init postgres backend: %w", err)
		}

		healthHandler.Register("postgres", func(ctx context.Context) error {
			return pool.Ping(ctx)
		})

		return backend, healthHandler, nil

	default:
		backend, err := filebackend.New(a.cfg.StateDir)
		if err != nil {
			return nil, nil, fmt.Errorf("init file backend: %w", err)
		}
		a.logger.Info("using file storage backend",
			slog.String("dir", backend.Dir()),
		)

		return backend, healthHandler, nil
	}
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	a.logger.Info("application shutdown complete")
	return nil
}
