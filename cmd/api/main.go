package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PratikDhanave/webhook-event-logger/internal/config"
	"github.com/PratikDhanave/webhook-event-logger/internal/events"
	"github.com/PratikDhanave/webhook-event-logger/internal/httpserver"
	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
)

// main boots the service: config → logger → event pipeline → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, closer, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	// A panic outside a request handler is logged and terminates the process.
	defer func() {
		if r := recover(); r != nil {
			lg.Error("Uncaught panic, shutting down", fmt.Errorf("%v", r))
			closer.Close()
			os.Exit(1)
		}
	}()

	proc := events.NewProcessor(events.NewDispatcher(cfg.DisplayLocation))
	router := httpserver.NewRouter(cfg, lg, proc)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lg.Info(fmt.Sprintf("Webhook server listening on %s (log file %q, display zone %s)",
			srv.Addr, cfg.LogFile, cfg.DisplayLocation))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("Server stopped unexpectedly", err)
			closer.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		lg.Info("Shutdown signal received, draining requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("Graceful shutdown failed", err)
			cancel()
			closer.Close()
			os.Exit(1)
		}
		lg.Info("Server stopped")
	}
}
