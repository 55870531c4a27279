// cmd/brief-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"creative-brief/internal/api"
	"creative-brief/internal/common/camunda"
	"creative-brief/internal/common/config"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/observability"
	"creative-brief/internal/orchestrator"
)

const serviceName = "EdgeVerve AI Brief Generator"

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting brief server...", zap.String("environment", cfg.App.Environment))

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	components, err := orchestrator.Build(ctx, cfg, obs, log)
	if err != nil {
		zapLog.Fatal("pipeline setup failed", zap.Error(err))
	}
	defer components.Close()

	checks := map[string]api.ReadinessCheck{"redis": nil, "zeebe": nil}
	for name, check := range components.Checks {
		checks[name] = check
	}

	if components.Redis != nil {
		err = retryWithBackoff(func() error {
			return components.Redis.Ping(ctx)
		}, 3, time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Warn("research cache unreachable, continuing without it", zap.Error(err))
		}
	}

	// --- Optional Zeebe job worker ---
	var jobWorker *camunda.JobWorker
	if cfg.Camunda.Enabled() {
		client, err := camunda.NewClient(ctx, camunda.DefaultClientConfig(cfg.Camunda.BrokerAddress))
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer client.Close()
		checks["zeebe"] = client.HealthCheck

		timeout := config.GetDuration(cfg.Camunda.Timeout)
		handler := orchestrator.NewJobHandler(components.Pipeline, cfg.Defaults, timeout, log)
		jobWorker = camunda.StartWorker(client.GetClient(), camunda.WorkerOptions{
			JobType:       cfg.Camunda.JobType,
			MaxJobsActive: cfg.Camunda.MaxJobsActive,
			Timeout:       timeout,
		}, handler, log)
	}

	server := api.NewServer(api.Options{
		Runner:         components.Pipeline,
		ServiceName:    serviceName,
		Product:        cfg.Render.Brand,
		Defaults:       cfg.Defaults,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		RequestTimeout: config.GetDuration(cfg.Server.RequestTimeout),
		CORSOrigin:     cfg.Server.CORSOrigin,
		Checks:         checks,
		Logger:         log,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}
	if jobWorker != nil {
		jobWorker.Stop()
	}
	zapLog.Info("Brief server stopped")
}
