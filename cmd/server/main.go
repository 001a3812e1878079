package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/api"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/api/handlers"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/config"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/logging"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/server"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.InitTracing(telemetry.Config{
		Enabled:     cfg.Telemetry.TracingEnabled,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	clock := synth.RealClock{}

	// Each listener gets its own random source so a fixed seed reproduces
	// each listener's sequence regardless of which others are enabled.
	newGenerator := func(offset int64) *synth.Generator {
		seed := cfg.Synth.Seed
		if seed != 0 {
			seed += offset
		}
		return synth.NewGenerator(synth.NewRand(seed), clock)
	}

	newRouter := func(listener string) *gin.Engine {
		return api.NewRouter(logger, api.RouterConfig{
			Listener:       listener,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			TracingEnabled: cfg.Telemetry.TracingEnabled,
		})
	}

	var servers []*server.Server

	if cfg.StockAPI.Enabled {
		router := newRouter("stock_api")
		api.SetupStockRoutes(router,
			handlers.NewStocksHandler(newGenerator(0), cfg.StockAPI.DefaultHistoryHours, cfg.StockAPI.MaxHistoryHours),
			handlers.NewHealthHandler(cfg.StockAPI.ServiceName, clock))
		servers = append(servers, server.NewServer("stock_api", cfg.StockAPI.Port, router, logger))
	}

	if cfg.MetricsAPI.Enabled {
		router := newRouter("metrics_api")
		api.SetupMetricsRoutes(router,
			handlers.NewMetricsHandler(newGenerator(1), cfg.MetricsAPI.Strategy()),
			handlers.NewHealthHandler(cfg.MetricsAPI.ServiceName, clock),
			cfg.MetricsAPI.Extended)
		servers = append(servers, server.NewServer("metrics_api", cfg.MetricsAPI.Port, router, logger))
	}

	if cfg.MetricsStatic.Enabled {
		router := newRouter("metrics_static")
		api.SetupMetricsRoutes(router,
			handlers.NewMetricsHandler(newGenerator(2), cfg.MetricsStatic.Strategy()),
			handlers.NewHealthHandler(cfg.MetricsStatic.ServiceName, clock),
			cfg.MetricsStatic.Extended)
		servers = append(servers, server.NewServer("metrics_static", cfg.MetricsStatic.Port, router, logger))
	}

	if cfg.Prometheus.Enabled {
		router := newRouter("prometheus")
		api.SetupPrometheusRoutes(router,
			handlers.NewPrometheusHandler(newGenerator(3), cfg.Prometheus.Strategy()),
			handlers.NewHealthHandler(cfg.Prometheus.ServiceName, clock))
		servers = append(servers, server.NewServer("prometheus", cfg.Prometheus.Port, router, logger))
	}

	monitor := telemetry.NewResourceMonitor(logger, cfg.MonitorIntervalDuration())
	monitor.Start(context.Background())
	defer monitor.Stop()

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"listeners":   len(servers),
	}).Info("demo feed starting")

	// Start all listeners; a failure on any of them takes the process down
	// through the same drain path as a signal.
	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			if err := srv.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the listeners
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutdown signal received")
	case err := <-errCh:
		logger.WithError(err).Error("listener failed")
		runErr = err
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("listener forced to shutdown")
			if runErr == nil {
				runErr = err
			}
		}
	}

	logger.Info("demo feed exited")
	return runErr
}
