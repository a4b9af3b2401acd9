package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/metrics"
)

// shutdownTimeout bounds graceful shutdown of both servers.
const shutdownTimeout = 5 * time.Second

// runServe implements "md2site serve": build once, then serve the output
// directory until interrupted.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %q", ErrUsage, positional)
	}

	common := flags.build.common
	logger := newLogger(env.Stderr, common.quiet, common.verbose)

	cfg, err := resolveBuildConfig(&flags.build, env, logger)
	if err != nil {
		return err
	}
	mergeServeFlags(flags, &cfg.Serve)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rec, err := metrics.NewRecorder(env.Registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	if _, err := buildSite(ctx, cfg, env, logger, rec, common); err != nil {
		if !errors.Is(err, ErrPagesFailed) {
			return err
		}
		logger.Warn("serving a partial build", "err", err)
	}

	site := newSiteServer(cfg.Site.Output, env.Registry)
	var metricsServer *echo.Echo
	if cfg.Serve.MetricsAddr != "" {
		metricsServer = newMetricsServer(env.Registry)
	}

	return serve(ctx, logger, cfg.Serve, site, metricsServer)
}

// mergeServeFlags applies listen flags over config.
func mergeServeFlags(flags *serveFlags, cfg *config.ServeConfig) {
	if flags.addr != "" {
		cfg.Addr = flags.addr
	}
	if flags.metricsAddr != "" {
		cfg.MetricsAddr = flags.metricsAddr
	}
	if flags.noMetrics {
		cfg.MetricsAddr = ""
	}
}

// newSiteServer serves the files under root, with request metrics
// registered on reg.
func newSiteServer(root string, reg prometheus.Registerer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 metrics.Namespace,
		Registerer:                reg,
		DoNotUseRequestPathFor404: true,
	}))
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  root,
		Index: "index.html",
	}))
	return e
}

// newMetricsServer exposes the metrics gathered by g on /metrics.
func newMetricsServer(g prometheus.Gatherer) *echo.Echo {
	m := echo.New()
	m.HideBanner = true
	m.HidePort = true
	m.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: g}))
	return m
}

// serve runs the site server, and the metrics server when not nil, until
// ctx is done or a server fails. Both servers are shut down on return.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServeConfig, site, metricsServer *echo.Echo) error {
	errc := make(chan error, 2)
	start := func(e *echo.Echo, name, addr string) {
		logger.Info("listening", "server", name, "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("%s server: %w%s", name, err, hints.ForListenAddress(addr))
		}
	}

	servers := []*echo.Echo{site}
	go start(site, "site", cfg.Addr)
	if metricsServer != nil {
		servers = append(servers, metricsServer)
		go start(metricsServer, "metrics", cfg.MetricsAddr)
	}

	var err error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, e := range servers {
		if serr := e.Shutdown(shutdownCtx); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}
