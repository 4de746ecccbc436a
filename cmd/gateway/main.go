package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/sellerdash/api/routes"
	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/config"
	"github.com/angelmondragon/sellerdash/pkg/instance"
	"github.com/angelmondragon/sellerdash/pkg/logger"
	"github.com/angelmondragon/sellerdash/pkg/metrics"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Fields: map[string]any{
			"env":      cfg.App.Env,
			"instance": instance.GetID(),
		},
	})

	// the gateway serves many sellers, so sessions travel per request and the
	// shared transport keeps no cookie jar
	transportOpts := []transport.Option{
		transport.WithBaseURL(cfg.API.BaseURL),
		transport.WithTimeout(cfg.API.Timeout),
		transport.WithCookieJar(nil),
		transport.WithHeader("User-Agent", cfg.API.UserAgent),
	}
	if cfg.API.RequestID {
		transportOpts = append(transportOpts, transport.WithInterceptor(transport.RequestID()))
	}
	backend, err := transport.NewClient(transportOpts...)
	if err != nil {
		logg.Error(context.Background(), "failed to build backend transport", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := apiclient.New(backend,
		apiclient.WithLogger(logg),
		apiclient.WithMetrics(metrics.NewRequestMetrics(reg)),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"addr":    addr,
		"backend": backend.BaseURL(),
	})
	logg.Info(ctx, "starting gateway server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, reg, routes.NewServices(api, cfg.Gateway.OverviewTimeout)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "gateway server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down gateway server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "gateway shutdown failed", err)
		}
	}
}
