package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

func TestNewPetFedEvent(t *testing.T) {
	evt := NewPetFedEvent("alice", domain.FoodGood, 1, 3, 2)

	assert.Equal(t, PetFed, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[PetFedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, domain.FoodGood, payload.Food)
	assert.Equal(t, 2, payload.LevelsGained)
	assert.Equal(t, 3, payload.Level)
}

func TestNewCoinsAwardedEvent_SetsSourceMetadata(t *testing.T) {
	evt := NewCoinsAwardedEvent("bob", 1500, SourceGoal)

	assert.Equal(t, SourceGoal, evt.GetMetadataValue("source"))
	assert.Nil(t, evt.GetMetadataValue("missing"))
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"username":          "carol",
		"species_id":        2,
		"evolution_variant": 4,
	}

	payload, err := DecodePayload[PetEvolvedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, "carol", payload.Username)
	assert.Equal(t, domain.SpeciesBeast, payload.Species)
	assert.Equal(t, 4, payload.Variant)
}

func TestPublishBestEffort(t *testing.T) {
	t.Run("nil bus is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			PublishBestEffort(context.Background(), nil, NewGoalAchievedEvent("dave"))
		})
	})

	t.Run("handler errors are swallowed", func(t *testing.T) {
		bus := NewMemoryBus()
		called := false
		bus.Subscribe(PetDied, func(ctx context.Context, e Event) error {
			called = true
			return errors.New("boom")
		})

		PublishBestEffort(context.Background(), bus, NewPetDiedEvent("erin", domain.SpeciesBird, 3))

		assert.True(t, called)
	})
}
