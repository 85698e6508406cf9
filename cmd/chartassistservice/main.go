package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chart-assist/internal/assistant"
	"chart-assist/internal/chart"
	"chart-assist/internal/config"
	"chart-assist/internal/history"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// main is the entry point for the ChartAssistService.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		slog.Error("failed to open history store", "store", cfg.HistoryStore, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	// The history service doubles as the assistant's HistoryClient.
	historyService := history.NewService(repo)
	assistantService, closeClient := assistant.NewServiceFromConfig(ctx, cfg.Backend, historyService)
	defer func() {
		if err := closeClient(); err != nil {
			slog.Warn("failed to close completion client", "error", err)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ChartAssistService OK"))
	})

	chart.NewHandler().RegisterRoutes(r)
	assistant.NewHandler(assistantService).RegisterRoutes(r)
	history.NewHandler(historyService).RegisterRoutes(r)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("ChartAssistService starting",
			"port", cfg.Port,
			"provider", cfg.Backend.Provider,
			"online", assistantService.CredentialValid(),
			"history_store", cfg.HistoryStore,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// openRepository builds the configured history store and returns its closer.
func openRepository(ctx context.Context, cfg *config.Config) (history.Repository, func(), error) {
	switch cfg.HistoryStore {
	case config.StoreFile:
		return history.NewFileRepository(cfg.HistoryFile), func() {}, nil

	case config.StorePostgres:
		if err := history.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		db, err := history.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return history.NewPostgresRepository(db), func() { db.Close() }, nil

	case config.StoreRedis:
		rdb, err := history.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return history.NewRedisRepository(rdb), func() { rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.HistoryStore)
	}
}
