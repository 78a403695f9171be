package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Pet lifecycle event types
const (
	PetStarted      Type = "pet.started"
	PetRevived      Type = "pet.revived"
	PetReset        Type = "pet.reset"
	PetFed          Type = "pet.fed"
	PetEvolved      Type = "pet.evolved"
	PetDied         Type = "pet.died"
	FoodBought      Type = "shop.food_bought"
	CoinsAwarded    Type = "wallet.coins_awarded"
	OutcomeResolved Type = "calendar.outcome_resolved"
	GoalAchieved    Type = "calendar.goal_achieved"
	FormDiscovered  Type = "pokedex.form_discovered"
)

// AllTypes lists every event type the pet and calendar services publish.
var AllTypes = []Type{
	PetStarted, PetRevived, PetReset, PetFed, PetEvolved, PetDied,
	FoodBought, CoinsAwarded, OutcomeResolved, GoalAchieved, FormDiscovered,
}

// Typed event payloads

// PetLifecyclePayloadV1 is the payload for start, revive and reset events
type PetLifecyclePayloadV1 struct {
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// PetFedPayloadV1 is the payload for a successful feeding
type PetFedPayloadV1 struct {
	Username     string          `json:"username"`
	Food         domain.FoodTier `json:"food"`
	StartLevel   int             `json:"start_level"`
	Level        int             `json:"level"`
	LevelsGained int             `json:"levels_gained"`
	Timestamp    int64           `json:"timestamp"`
}

// PetEvolvedPayloadV1 is the payload for a pet reaching its terminal form
type PetEvolvedPayloadV1 struct {
	Username  string           `json:"username"`
	Species   domain.SpeciesID `json:"species_id"`
	Variant   int              `json:"evolution_variant"`
	Timestamp int64            `json:"timestamp"`
}

// PetDiedPayloadV1 is the payload for a pet death
type PetDiedPayloadV1 struct {
	Username  string           `json:"username"`
	Species   domain.SpeciesID `json:"species_id"`
	LastLevel int              `json:"last_level"`
	Timestamp int64            `json:"timestamp"`
}

// FoodBoughtPayloadV1 is the payload for shop purchases
type FoodBoughtPayloadV1 struct {
	Username  string          `json:"username"`
	Food      domain.FoodTier `json:"food"`
	Quantity  int             `json:"quantity"`
	Cost      int             `json:"cost"`
	Timestamp int64           `json:"timestamp"`
}

// CoinsAwardedPayloadV1 is the payload for coin credits
type CoinsAwardedPayloadV1 struct {
	Username  string `json:"username"`
	Amount    int    `json:"amount"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// OutcomeResolvedPayloadV1 is the payload for a resolved calendar event
type OutcomeResolvedPayloadV1 struct {
	Username        string `json:"username"`
	Success         bool   `json:"success"`
	DurationMinutes int    `json:"duration_minutes"`
	CoinsAwarded    int    `json:"coins_awarded"`
	LevelsLost      int    `json:"levels_lost"`
	Died            bool   `json:"died"`
	Timestamp       int64  `json:"timestamp"`
}

// FormDiscoveredPayloadV1 is the payload for a new pokedex entry
type FormDiscoveredPayloadV1 struct {
	Username  string `json:"username"`
	ImageKey  string `json:"image_key"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewPetLifecycleEvent creates a start, revive or reset event
func NewPetLifecycleEvent(t Type, username string) Event {
	return newEvent(t, PetLifecyclePayloadV1{Username: username, Timestamp: time.Now().Unix()})
}

// NewPetFedEvent creates a new feeding event
func NewPetFedEvent(username string, food domain.FoodTier, startLevel, level, levelsGained int) Event {
	return newEvent(PetFed, PetFedPayloadV1{
		Username:     username,
		Food:         food,
		StartLevel:   startLevel,
		Level:        level,
		LevelsGained: levelsGained,
		Timestamp:    time.Now().Unix(),
	})
}

// NewPetEvolvedEvent creates a new evolution event
func NewPetEvolvedEvent(username string, species domain.SpeciesID, variant int) Event {
	return newEvent(PetEvolved, PetEvolvedPayloadV1{
		Username:  username,
		Species:   species,
		Variant:   variant,
		Timestamp: time.Now().Unix(),
	})
}

// NewPetDiedEvent creates a new death event
func NewPetDiedEvent(username string, species domain.SpeciesID, lastLevel int) Event {
	return newEvent(PetDied, PetDiedPayloadV1{
		Username:  username,
		Species:   species,
		LastLevel: lastLevel,
		Timestamp: time.Now().Unix(),
	})
}

// NewFoodBoughtEvent creates a new purchase event
func NewFoodBoughtEvent(username string, food domain.FoodTier, quantity, cost int) Event {
	return newEvent(FoodBought, FoodBoughtPayloadV1{
		Username:  username,
		Food:      food,
		Quantity:  quantity,
		Cost:      cost,
		Timestamp: time.Now().Unix(),
	})
}

// NewCoinsAwardedEvent creates a new coin credit event
func NewCoinsAwardedEvent(username string, amount int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CoinsAwarded,
		Payload: CoinsAwardedPayloadV1{
			Username:  username,
			Amount:    amount,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{"source": source},
	}
}

// NewOutcomeResolvedEvent creates a new outcome event
func NewOutcomeResolvedEvent(username string, success bool, duration, coins, levelsLost int, died bool) Event {
	return newEvent(OutcomeResolved, OutcomeResolvedPayloadV1{
		Username:        username,
		Success:         success,
		DurationMinutes: duration,
		CoinsAwarded:    coins,
		LevelsLost:      levelsLost,
		Died:            died,
		Timestamp:       time.Now().Unix(),
	})
}

// NewGoalAchievedEvent creates a new goal completion event
func NewGoalAchievedEvent(username string) Event {
	return NewPetLifecycleEvent(GoalAchieved, username)
}

// NewFormDiscoveredEvent creates a new pokedex discovery event
func NewFormDiscoveredEvent(username, imageKey string) Event {
	return newEvent(FormDiscovered, FormDiscoveredPayloadV1{
		Username:  username,
		ImageKey:  imageKey,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes evt on bus and logs failures instead of returning them.
// A nil bus is a no-op.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
