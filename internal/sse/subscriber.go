package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/PetCalendar_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every pet and calendar event to the hub.
func (s *Subscriber) Subscribe() {
	for _, t := range event.AllTypes {
		s.bus.Subscribe(t, s.handleEvent)
	}
	slog.Info(LogMsgSubscriberReady, "types", len(event.AllTypes))
}

func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	username, err := event.Username(evt)
	if err != nil {
		slog.Warn(LogMsgNoUser, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(username, string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "username", username)
	return nil
}
