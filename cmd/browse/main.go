// cmd/browse/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"repo-showcase/internal/catalog"
	"repo-showcase/internal/config"
	"repo-showcase/internal/github"
	"repo-showcase/internal/loader"
	"repo-showcase/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()
	logLevel := new(slog.LevelVar)
	logLevel.Set(cfg.SlogLevel())
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: logLevel}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	ghClient, err := github.NewClient(github.Config{
		BaseURL: cfg.GithubAPIURL,
		Timeout: cfg.FetchTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create github client: %w", err)
	}
	repoLoader, err := loader.NewLoader(ghClient, cfg.GithubOrg, logger)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	m := tui.NewModel(ctx, repoLoader, catalog.NewEngine(cfg.LocaleTag), cfg.Location)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
