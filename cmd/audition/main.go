package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/audition/internal/core/config"
	"github.com/vietddude/audition/internal/infra/resilience"
	"github.com/vietddude/audition/internal/infra/upstream"
	"github.com/vietddude/audition/internal/metrics"
	"github.com/vietddude/audition/internal/server"
)

func main() {
	// Load .env if present (no-op otherwise)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Load Configuration first (before setting up logger)
	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to default logger for config load errors
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Simplifed logging logic (debug < info)
	slogLevel := slog.LevelInfo
	if *isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	// Initialize stylelog with tint.Options for level control
	stylelog.InitDefault(
		&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	slog.Info("Logger initialized", "level", slogLevel.String())

	log := slog.Default()

	// Wire the resilience stack around the upstream client
	breaker := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Cooldown:         cfg.Breaker.Cooldown,
		HalfOpenMaxCalls: cfg.Breaker.HalfOpenMaxCalls,
		OnStateChange: func(from, to resilience.State) {
			log.Warn("Circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.Set(float64(to))
		},
	})
	policy := resilience.NewRetryPolicy(cfg.Retry.MaxAttempts, cfg.Retry.InitialDelay, cfg.Retry.MaxDelay)
	transport := upstream.NewClient(cfg.Upstream.ConnectTimeout, cfg.Upstream.ReadTimeout)
	defer transport.CloseIdleConnections()

	gateway := upstream.NewGateway(transport, policy, breaker, upstream.Endpoints{
		BaseURL:      cfg.Upstream.BaseURL,
		PostsPath:    cfg.Upstream.PostsPath,
		CommentsPath: cfg.Upstream.CommentsPath,
	}, log)

	app := server.New(cfg, gateway, breaker, log)

	// Handle OS Signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start App
	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	// Wait for Signal or server failure
	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
	case err := <-errChan:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graceful Shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Audition gateway stopped gracefully")
}
