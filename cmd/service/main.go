// cmd/service/main.go
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

	"golang.org/x/sync/errgroup"

	"repo-showcase/internal/api"
	"repo-showcase/internal/catalog"
	"repo-showcase/internal/config"
	"repo-showcase/internal/github"
	"repo-showcase/internal/loader"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logLevel.Set(cfg.SlogLevel())
	logger.Info("Configuration loaded successfully", "org", cfg.GithubOrg, "locale", cfg.LocaleTag.String())

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	router, repoLoader, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Fetch once, serve, and stop on signal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A failed fetch is shown to users, it does not stop the server.
		_ = repoLoader.Load(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received. Exiting.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newApp wires the GitHub client, the loader and the HTTP router.
func newApp(cfg *config.Config, logger *slog.Logger) (http.Handler, *loader.Loader, error) {
	ghClient, err := github.NewClient(github.Config{
		BaseURL: cfg.GithubAPIURL,
		Timeout: cfg.FetchTimeout,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create github client: %w", err)
	}

	repoLoader, err := loader.NewLoader(ghClient, cfg.GithubOrg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create loader: %w", err)
	}

	engine := catalog.NewEngine(cfg.LocaleTag)
	return api.NewRouter(repoLoader, engine, cfg.Location, logger), repoLoader, nil
}
