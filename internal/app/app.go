package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres"
	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres/analysisrun"
	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres/bahr"
	"github.com/heartmarshall/bahr-checker/internal/config"
	"github.com/heartmarshall/bahr-checker/internal/service/analysis"
	"github.com/heartmarshall/bahr-checker/internal/service/catalog"
	"github.com/heartmarshall/bahr-checker/internal/transport/middleware"
	"github.com/heartmarshall/bahr-checker/internal/transport/rest"
)

const rateLimitSweep = time.Minute

// Run loads configuration, connects to PostgreSQL, wires services and serves
// HTTP until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting bahr-checker",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	handler, cleanup := NewHTTPHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHTTPHandler wires repositories, services and the middleware chain
// around the API router. The returned cleanup stops the rate limiter.
func NewHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	bahrs := bahr.New(pool)
	runs := analysisrun.New(pool)

	analysisSvc := analysis.NewService(logger, bahrs, runs, analysis.Config{
		MaxTextLength: cfg.Analysis.MaxTextLength,
		MaxLines:      cfg.Analysis.MaxLines,
		Workers:       cfg.Analysis.Workers,
		RecordRuns:    cfg.Analysis.RecordRuns,
	})
	catalogSvc := catalog.NewService(logger, bahrs)

	limiter := middleware.NewRateLimiter(rateLimitSweep)

	mux := rest.NewRouter(rest.Handlers{
		Analyze: rest.NewAnalyzeHandler(analysisSvc, logger),
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		Health:  rest.NewHealthHandler(pool, Version),
	}, limiter.Limit(cfg.Analysis.RateLimitPerMinute))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter.Stop
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}
