package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/metrics"
	"github.com/osse101/PetCalendar_Go/internal/sse"
)

// InitializeEventSystem creates the in-process event bus, starts the SSE
// hub and registers all subscribers. The caller stops the hub on shutdown.
func InitializeEventSystem() (event.Bus, *sse.Hub, error) {
	bus := event.NewMemoryBus()
	hub := sse.NewHub()

	if err := RegisterEventHandlers(bus, hub); err != nil {
		return nil, nil, err
	}
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return bus, hub, nil
}

// RegisterEventHandlers sets up the event subscribers:
// - Metrics collector (for event-based metrics)
// - SSE subscriber (live per-user stream)
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	return nil
}
