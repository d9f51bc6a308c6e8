package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/toevol/toevol-backend/internal/adapter/postgres"
	reviewrepo "github.com/toevol/toevol-backend/internal/adapter/postgres/review"
	vocabularyrepo "github.com/toevol/toevol-backend/internal/adapter/postgres/vocabulary"
	"github.com/toevol/toevol-backend/internal/config"
	"github.com/toevol/toevol-backend/internal/service/review"
	"github.com/toevol/toevol-backend/internal/service/vocabulary"
	"github.com/toevol/toevol-backend/internal/transport/middleware"
	"github.com/toevol/toevol-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes the
// logger and the database pool, applies migrations, wires repositories,
// services, and the HTTP transport, and serves until ctx is cancelled or a
// termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	vocabRepo := vocabularyrepo.New(pool)
	reviewRepo := reviewrepo.New(pool)

	vocabService := vocabulary.NewService(logger, vocabRepo, txManager, cfg.Pagination)
	reviewService := review.NewService(logger, vocabRepo, reviewRepo, txManager, cfg.Review)

	router := rest.NewRouter(
		rest.NewVocabularyHandler(vocabService, logger),
		rest.NewReviewHandler(reviewService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
