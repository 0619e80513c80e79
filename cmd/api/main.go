package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/rest"
	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/sqlite"
	"github.com/jch254/muzo-fulfillment-handler/internal/app"
	"github.com/jch254/muzo-fulfillment-handler/internal/config"
	"github.com/jch254/muzo-fulfillment-handler/internal/observability"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// 2. Session store standing in for the Lex host
	sessions, err := sqlite.NewAdapter(cfg.SessionDBPath)
	if err != nil {
		logger.Fatal("failed to initialize session store", zap.Error(err))
	}
	defer sessions.Close()

	// 3. Core wiring
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	dispatcher := app.NewDispatcher(cfg, logger, reg)

	// 4. HTTP harness
	handler := rest.NewHandler(dispatcher, sessions, reg, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("harness listening", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down harness")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}
