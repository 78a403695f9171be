package bootstrap

import (
	"context"
	"io"
	"log/slog"
)

// Stopper is a component that drains in-flight work, usually the HTTP server.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Hub is the live event stream hub.
type Hub interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Hub    Hub
	Store  io.Closer
}

// GracefulShutdown closes the event streams first, since open streams would
// hold the server shutdown until its deadline. The HTTP server stops before
// the store so that in-flight requests can still persist. Errors are logged
// and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgClosingStreams)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
