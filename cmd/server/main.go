package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"clinic/internal/clinic/handler"
	"clinic/internal/clinic/metrics"
	"clinic/internal/clinic/registry"
	"clinic/internal/clinic/service"
	"clinic/internal/platform/config"
	"clinic/internal/platform/httpserver"
	"clinic/internal/platform/logger"
	httptransport "clinic/internal/transport/http"
)

// main wires the registry, service and HTTP router, then serves the API and
// the metrics endpoint until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promRegistry)

	reg, err := registry.New(
		registry.WithLogger(log.With("component", "registry")),
		registry.WithMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	svc, err := service.New(reg,
		service.WithLogger(log.With("component", "service")),
		service.WithMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}

	router := httptransport.NewRouter(
		httptransport.RouterConfig{RateLimit: cfg.RateLimit, CORSOrigins: cfg.CORSOrigins},
		log,
		m,
		handler.New(svc, log.With("component", "handler")),
	)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{Registry: promRegistry}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log.With("server", "api"))
	})
	g.Go(func() error {
		return httpserver.Run(ctx, httpserver.New(cfg.MetricsAddr, metricsMux), log.With("server", "metrics"))
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Info("server exiting")
	return nil
}
