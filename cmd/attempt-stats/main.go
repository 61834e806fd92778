package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attempt-stats/internal/app"
	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/configs"
)

const (
	modeRun   = "run"
	modeServe = "serve"
)

func main() {
	configPath := flag.String("config", "./configs/config.yml", "path to the config file (yaml or json)")
	mode := flag.String("mode", modeRun, "run: one batch and exit, serve: http api with queued batches")
	start := flag.String("start", "", "window start, e.g. \"2023-04-01 12:46:47.860798\" (run mode)")
	end := flag.String("end", "", "window end (run mode)")
	last := flag.Duration("last", 24*time.Hour, "when start and end are empty, run over the previous window of this length")
	flag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case modeRun:
		os.Exit(run(cfg, *start, *end, *last))
	case modeServe:
		os.Exit(serve(cfg))
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q (expected %s or %s)\n", *mode, modeRun, modeServe)
		os.Exit(2)
	}
}

func run(cfg *configs.Config, start, end string, last time.Duration) int {
	window, err := resolveWindow(start, end, last, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid window: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return 1
	}
	defer application.Close()

	report, runErr := application.Run(ctx, window)
	if report != nil {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(report)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Batch failed: %v\n", runErr)
		return 1
	}
	return 0
}

func resolveWindow(start, end string, last time.Duration, now time.Time) (models.TimeWindow, error) {
	if start == "" && end == "" {
		if last <= 0 {
			return models.TimeWindow{}, fmt.Errorf("%w: -last must be positive", models.ErrInvalidTimeWindow)
		}
		return models.PreviousWindow(now, last), nil
	}
	return models.ParseTimeWindow(start, end)
}

func serve(cfg *configs.Config) int {
	// Initialize application
	application, err := app.New(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return 1
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	fmt.Println("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		_ = application.Close()
		return 1
	}

	// Graceful shutdown, the worker may still be delivering a batch
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return 1
	}
	return 0
}
