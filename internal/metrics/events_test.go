package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/event"
)

func TestEventMetricsCollector_RecordsPetEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	feedBefore := testutil.ToFloat64(PetFeedings.WithLabelValues(string(domain.FoodPremium)))
	levelsBefore := testutil.ToFloat64(PetLevelsGained)
	evolvedBefore := testutil.ToFloat64(PetEvolutions.WithLabelValues("2", "3"))
	deathsBefore := testutil.ToFloat64(PetDeaths.WithLabelValues("1"))
	spentBefore := testutil.ToFloat64(CoinsSpent)
	goalBefore := testutil.ToFloat64(CoinsAwarded.WithLabelValues(event.SourceGoal))
	failBefore := testutil.ToFloat64(EventOutcomes.WithLabelValues(ResultFailure))

	require.NoError(t, bus.Publish(ctx, event.NewPetFedEvent("alice", domain.FoodPremium, 1, 3, 2)))
	require.NoError(t, bus.Publish(ctx, event.NewPetEvolvedEvent("alice", domain.SpeciesBeast, 3)))
	require.NoError(t, bus.Publish(ctx, event.NewPetDiedEvent("alice", domain.SpeciesBird, 2)))
	require.NoError(t, bus.Publish(ctx, event.NewFoodBoughtEvent("alice", domain.FoodGood, 2, 100)))
	require.NoError(t, bus.Publish(ctx, event.NewCoinsAwardedEvent("alice", 1500, event.SourceGoal)))
	require.NoError(t, bus.Publish(ctx, event.NewOutcomeResolvedEvent("alice", false, 45, 0, 1, false)))

	assert.Equal(t, feedBefore+1, testutil.ToFloat64(PetFeedings.WithLabelValues(string(domain.FoodPremium))))
	assert.Equal(t, levelsBefore+2, testutil.ToFloat64(PetLevelsGained))
	assert.Equal(t, evolvedBefore+1, testutil.ToFloat64(PetEvolutions.WithLabelValues("2", "3")))
	assert.Equal(t, deathsBefore+1, testutil.ToFloat64(PetDeaths.WithLabelValues("1")))
	assert.Equal(t, spentBefore+100, testutil.ToFloat64(CoinsSpent))
	assert.Equal(t, goalBefore+1500, testutil.ToFloat64(CoinsAwarded.WithLabelValues(event.SourceGoal)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(EventOutcomes.WithLabelValues(ResultFailure)))
}

func TestEventMetricsCollector_BadPayloadCountsError(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.PetFed)))

	err := collector.HandleEvent(context.Background(), event.Event{
		Type:    event.PetFed,
		Payload: "not a payload",
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.PetFed))))
}
