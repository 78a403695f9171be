package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PetFed:
		var p event.PetFedPayloadV1
		if p, err = event.DecodePayload[event.PetFedPayloadV1](evt.Payload); err == nil {
			PetFeedings.WithLabelValues(string(p.Food)).Inc()
			PetLevelsGained.Add(float64(p.LevelsGained))
		}

	case event.PetEvolved:
		var p event.PetEvolvedPayloadV1
		if p, err = event.DecodePayload[event.PetEvolvedPayloadV1](evt.Payload); err == nil {
			PetEvolutions.WithLabelValues(strconv.Itoa(int(p.Species)), strconv.Itoa(p.Variant)).Inc()
		}

	case event.PetDied:
		var p event.PetDiedPayloadV1
		if p, err = event.DecodePayload[event.PetDiedPayloadV1](evt.Payload); err == nil {
			PetDeaths.WithLabelValues(strconv.Itoa(int(p.Species))).Inc()
		}

	case event.FoodBought:
		var p event.FoodBoughtPayloadV1
		if p, err = event.DecodePayload[event.FoodBoughtPayloadV1](evt.Payload); err == nil {
			FoodBought.WithLabelValues(string(p.Food)).Add(float64(p.Quantity))
			CoinsSpent.Add(float64(p.Cost))
		}

	case event.CoinsAwarded:
		var p event.CoinsAwardedPayloadV1
		if p, err = event.DecodePayload[event.CoinsAwardedPayloadV1](evt.Payload); err == nil {
			CoinsAwarded.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case event.OutcomeResolved:
		var p event.OutcomeResolvedPayloadV1
		if p, err = event.DecodePayload[event.OutcomeResolvedPayloadV1](evt.Payload); err == nil {
			result := ResultFailure
			if p.Success {
				result = ResultSuccess
			}
			EventOutcomes.WithLabelValues(result).Inc()
		}

	case event.FormDiscovered:
		FormsDiscovered.Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
