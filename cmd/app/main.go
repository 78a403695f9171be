package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PetCalendar_Go/internal/bootstrap"
	"github.com/osse101/PetCalendar_Go/internal/config"
	"github.com/osse101/PetCalendar_Go/internal/handler"
	"github.com/osse101/PetCalendar_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, hub, err := bootstrap.InitializeEventSystem()
	if err != nil {
		store.Close()
		return err
	}

	services, err := bootstrap.InitializeServices(cfg, store, bus)
	if err != nil {
		hub.Stop()
		store.Close()
		return err
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store, services.Pet, services.Calendar, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			hub.Stop()
			store.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Hub: hub, Store: store})
	return nil
}
