package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/database/memory"
	"github.com/osse101/PetCalendar_Go/internal/domain"
)

func TestDocumentStore_Defaults(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	t.Run("pet defaults to a never-started egg", func(t *testing.T) {
		p, err := store.GetPet(ctx, "alice")

		require.NoError(t, err)
		assert.False(t, p.Alive)
		assert.False(t, p.Started)
		assert.Equal(t, 0, p.Level)
		assert.Equal(t, domain.SpeciesNone, p.Species)
		assert.Len(t, p.Inventory, len(domain.FoodTiers))
	})

	t.Run("ledger defaults to empty", func(t *testing.T) {
		l, err := store.GetLedger(ctx, "alice")

		require.NoError(t, err)
		assert.Empty(t, l.Discovered)
		assert.NotNil(t, l.RaisingCounts)
	})

	t.Run("calendar documents default to empty", func(t *testing.T) {
		book, err := store.GetEvents(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, book)
		assert.Empty(t, book)

		goals, err := store.GetGoals(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, goals)
	})

	t.Run("locations default to the palette", func(t *testing.T) {
		locations, err := store.GetLocations(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultLocations(), locations)
	})
}

func TestDocumentStore_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	// ARRANGE
	p := domain.NewPet()
	p.Alive, p.Started = true, true
	p.Species = domain.SpeciesFire
	p.Level = 3
	p.Coins = 120
	p.Inventory[domain.FoodGood] = 4

	done := true
	book := domain.EventBook{
		"2030-01-02": {{ID: 1, Date: "2030-01-02", StartTime: "09:00", EndTime: "10:00", Text: "run", Done: &done}},
	}

	// ACT
	require.NoError(t, store.SavePet(ctx, "bob", *p))
	require.NoError(t, store.SaveEvents(ctx, "bob", book))
	require.NoError(t, store.SaveLedger(ctx, "bob", domain.Ledger{Discovered: []string{"pet4/lv3.gif"}}))

	// ASSERT
	got, err := store.GetPet(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	gotBook, err := store.GetEvents(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, gotBook["2030-01-02"], 1)
	assert.True(t, *gotBook["2030-01-02"][0].Done)

	ledger, err := store.GetLedger(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, ledger.HasDiscovered("pet4/lv3.gif"))
	assert.NotNil(t, ledger.RaisingCounts)

	other, err := store.GetPet(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, other.Started, "documents are partitioned per user")
}

func TestDocumentStore_FillsMissingInventoryTiers(t *testing.T) {
	docs := memory.New()
	store := database.NewDocumentStore(docs)
	ctx := context.Background()

	require.NoError(t, docs.Put(ctx, "dave", database.KindPet, []byte(`{"level":1,"alive":true,"started":true,"species_id":2,"inventory":{"basic":2}}`)))

	p, err := store.GetPet(ctx, "dave")

	require.NoError(t, err)
	assert.Equal(t, 2, p.Inventory[domain.FoodBasic])
	assert.Len(t, p.Inventory, len(domain.FoodTiers))
}

func TestDocumentStore_Errors(t *testing.T) {
	docs := memory.New()
	store := database.NewDocumentStore(docs)
	ctx := context.Background()

	t.Run("empty user is unauthenticated", func(t *testing.T) {
		_, err := store.GetPet(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)

		err = store.SaveGoals(ctx, "", domain.Goals{})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("corrupt document fails to decode", func(t *testing.T) {
		require.NoError(t, docs.Put(ctx, "erin", database.KindGoals, []byte(`not json`)))

		_, err := store.GetGoals(ctx, "erin")

		require.Error(t, err)
		assert.Contains(t, err.Error(), database.ErrMsgFailedToDecodeDocument)
	})
}
