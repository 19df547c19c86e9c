package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bgeun31/nettools/internal/config"
	"github.com/bgeun31/nettools/internal/core"
	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/lldp"
	"github.com/bgeun31/nettools/internal/logging"
	"github.com/bgeun31/nettools/internal/tracing"
	"github.com/bgeun31/nettools/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	svcCfg := core.ServiceConfig{
		Workers:       cfg.Parse.Workers,
		NotFound:      cfg.Parse.NotFound,
		MaxConcurrent: cfg.Upload.MaxConcurrent,
		MaxWait:       cfg.Upload.MaxWaitTime,
		MaxDocuments:  cfg.Upload.MaxDocuments,
	}
	if cfg.Parse.PatternsFile != "" {
		rf, err := extract.LoadRuleFile(cfg.Parse.PatternsFile)
		if err != nil {
			slog.Error("failed to load patterns file", "path", cfg.Parse.PatternsFile, "error", err)
			os.Exit(1)
		}
		if svcCfg.Patterns, err = rf.PatternSet(); err != nil {
			slog.Error("invalid patterns file", "path", cfg.Parse.PatternsFile, "error", err)
			os.Exit(1)
		}
		noise := lldp.NoiseFilterFromRules(rf.Noise)
		svcCfg.Noise = &noise
		slog.Info("patterns loaded", "path", cfg.Parse.PatternsFile)
	}

	core.JobTimeout = cfg.Upload.JobTimeout
	service := core.NewService(svcCfg)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Let running jobs finish before the listener closes
		if status := service.Limiter().Status(); status.Active > 0 {
			slog.Info("waiting for jobs to complete", "active", status.Active)
			if err := service.Limiter().WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("jobs did not complete in time", "error", err)
			} else {
				slog.Info("all jobs completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Warn("tracing shutdown error", "error", err)
		}
	}()

	if err := server.Start(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	<-done
	slog.Info("server stopped")
}
