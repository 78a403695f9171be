package pet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/database/memory"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/repository"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
)

const testUser = "bob"

type testEnv struct {
	svc     Service
	store   *database.DocumentStore
	bus     *event.MemoryBus
	evolver *fakeEvolver
	events  map[event.Type]int
}

func newTestEnv(t *testing.T, tables *rewards.Tables) *testEnv {
	t.Helper()
	catalogue, err := LoadCatalogue()
	require.NoError(t, err)

	env := &testEnv{
		store:   memory.NewStore(),
		bus:     event.NewMemoryBus(),
		evolver: &fakeEvolver{variant: 2},
		events:  make(map[event.Type]int),
	}
	for _, typ := range event.AllTypes {
		env.bus.Subscribe(typ, func(_ context.Context, evt event.Event) error {
			env.events[evt.Type]++
			return nil
		})
	}
	env.svc = NewService(env.store, tables, env.evolver, catalogue, env.bus)
	return env
}

func (e *testEnv) seed(t *testing.T, p *domain.Pet) {
	t.Helper()
	require.NoError(t, e.store.SavePet(context.Background(), testUser, *p))
}

func (e *testEnv) ledger(t *testing.T) *domain.Ledger {
	t.Helper()
	l, err := e.store.GetLedger(context.Background(), testUser)
	require.NoError(t, err)
	return l
}

func (e *testEnv) pet(t *testing.T) *domain.Pet {
	t.Helper()
	p, err := e.store.GetPet(context.Background(), testUser)
	require.NoError(t, err)
	return p
}

func TestService_FeedRecordsOneRaising(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, testTables(13))
	p := alivePet(domain.SpeciesBird, 0, 0)
	p.Inventory[domain.FoodSpecial] = 1
	env.seed(t, p)

	// ACT
	result, err := env.svc.Feed(context.Background(), testUser, domain.FoodSpecial)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 2, result.LevelsGained)
	ledger := env.ledger(t)
	assert.True(t, ledger.HasDiscovered("pet1/lv2.gif"))
	assert.False(t, ledger.HasDiscovered("pet1/lv1.gif"), "intermediate forms are never shown")
	assert.Equal(t, 1, ledger.RaisingCount("pet1/lv2.gif"))
	assert.Equal(t, 2, env.pet(t).Level)
	assert.Equal(t, 1, env.events[event.PetFed])
	assert.Equal(t, 1, env.events[event.FormDiscovered])
	assert.Zero(t, env.events[event.PetEvolved])
}

func TestService_FeedEvolution(t *testing.T) {
	// ARRANGE
	tables := rewards.Classic()
	tables.ExpToNextLevel[4] = 5
	tables.FoodExperience[domain.FoodGood] = 6
	env := newTestEnv(t, tables)
	p := alivePet(domain.SpeciesBeast, 4, 0)
	p.Inventory[domain.FoodGood] = 1
	env.seed(t, p)

	// ACT
	result, err := env.svc.Feed(context.Background(), testUser, domain.FoodGood)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "pet2/lv5_type2.gif", result.ImageKey)
	assert.Equal(t, 1, env.ledger(t).RaisingCount("pet2/lv5_type2.gif"))
	assert.Equal(t, 1, env.events[event.PetEvolved])

	view, err := env.svc.GetPet(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Rarity)
	assert.Equal(t, 1, env.events[event.FormDiscovered], "discovery is recorded once")
}

func TestService_RejectedFeedIsNotSaved(t *testing.T) {
	env := newTestEnv(t, rewards.Classic())
	env.seed(t, alivePet(domain.SpeciesCute, 2, 1))

	result, err := env.svc.Feed(context.Background(), testUser, domain.FoodBasic)

	require.NoError(t, err)
	assert.True(t, result.Rejected)
	assert.Equal(t, "You have no basic food!", result.Message)
	assert.NotEqual(t, result.Message, env.pet(t).Message)
	assert.Zero(t, env.events[event.PetFed])
	assert.Zero(t, env.ledger(t).RaisingCount("pet3/lv2.gif"))
}

func TestService_GetPetIsIdempotent(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, rewards.Classic())
	env.seed(t, alivePet(domain.SpeciesFire, 3, 0))
	ctx := context.Background()

	// ACT
	first, err := env.svc.GetPet(ctx, testUser)
	require.NoError(t, err)
	second, err := env.svc.GetPet(ctx, testUser)
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, first, second)
	assert.Equal(t, "pet4/lv3.gif", first.ImageKey)
	assert.NotEqual(t, UnknownFormName, first.FormName)
	assert.Equal(t, 14, first.NextRequiredExp)
	assert.NotEmpty(t, first.SpeciesName)
	ledger := env.ledger(t)
	assert.True(t, ledger.HasDiscovered("pet4/lv3.gif"))
	assert.Zero(t, ledger.RaisingCount("pet4/lv3.gif"))
	assert.Equal(t, 1, env.events[event.FormDiscovered])
}

func TestService_EggsAreNotCatalogued(t *testing.T) {
	env := newTestEnv(t, rewards.Classic())

	view, err := env.svc.GetPet(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, "pet1/egg.jpg", view.ImageKey)
	assert.Empty(t, env.ledger(t).Discovered)
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("start once", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())

		view, err := env.svc.Start(ctx, testUser, domain.SpeciesSushi)
		require.NoError(t, err)
		assert.True(t, view.Alive)
		assert.True(t, view.Started)
		assert.Equal(t, domain.SpeciesSushi, view.Species)
		assert.Equal(t, "pet5/egg.jpg", view.ImageKey)
		assert.Equal(t, MsgStarted, view.Message)

		_, err = env.svc.Start(ctx, testUser, domain.SpeciesBird)
		assert.ErrorIs(t, err, domain.ErrPetAlreadyStarted)
		assert.Equal(t, 1, env.events[event.PetStarted])
	})

	t.Run("invalid species", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())

		_, err := env.svc.Start(ctx, testUser, domain.SpeciesID(9))
		assert.ErrorIs(t, err, domain.ErrInvalidSpecies)
		_, err = env.svc.Revive(ctx, testUser, domain.SpeciesNone)
		assert.ErrorIs(t, err, domain.ErrInvalidSpecies)
	})

	t.Run("revive keeps the wallet", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())
		p := alivePet(domain.SpeciesBird, 3, 2)
		p.Alive = false
		p.Coins = 70
		p.Inventory[domain.FoodGood] = 4
		env.seed(t, p)

		view, err := env.svc.Revive(ctx, testUser, domain.SpeciesHybrid)

		require.NoError(t, err)
		assert.True(t, view.Alive)
		assert.Equal(t, 0, view.Level)
		assert.Equal(t, domain.SpeciesHybrid, view.Species)
		assert.Equal(t, 70, view.Coins)
		assert.Equal(t, 4, view.Inventory[domain.FoodGood])
		assert.Equal(t, "Restarted from an egg! You still have 4 food.", view.Message)
	})

	t.Run("revive before start", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())

		_, err := env.svc.Revive(ctx, testUser, domain.SpeciesBird)

		assert.ErrorIs(t, err, domain.ErrPetNotStarted)
	})

	t.Run("reset allows a new start", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())
		p := alivePet(domain.SpeciesBeast, 5, 0)
		p.Evolution = 3
		p.Coins = 12
		env.seed(t, p)

		view, err := env.svc.Reset(ctx, testUser)
		require.NoError(t, err)
		assert.False(t, view.Started)
		assert.Equal(t, domain.SpeciesNone, view.Species)
		assert.Equal(t, 0, view.Evolution)
		assert.Equal(t, 12, view.Coins)

		_, err = env.svc.Start(ctx, testUser, domain.SpeciesCute)
		assert.NoError(t, err)
	})
}

func TestService_BuyFood(t *testing.T) {
	tests := []struct {
		name     string
		coins    int
		food     domain.FoodTier
		quantity int
		wantErr  error
		wantLeft int
	}{
		{name: "exact funds", coins: 100, food: domain.FoodGood, quantity: 2, wantLeft: 0},
		{name: "cheap bulk", coins: 120, food: domain.FoodBasic, quantity: 99, wantLeft: 21},
		{name: "not enough coins", coins: 199, food: domain.FoodSpecial, quantity: 1, wantErr: domain.ErrInsufficientFunds},
		{name: "zero quantity", coins: 500, food: domain.FoodBasic, quantity: 0, wantErr: domain.ErrInvalidQuantity},
		{name: "too many", coins: 500, food: domain.FoodBasic, quantity: 100, wantErr: domain.ErrInvalidQuantity},
		{name: "unknown tier", coins: 500, food: domain.FoodTier("gold"), quantity: 1, wantErr: domain.ErrInvalidFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			env := newTestEnv(t, rewards.Classic())
			p := domain.NewPet()
			p.Coins = tt.coins
			env.seed(t, p)

			// ACT
			result, err := env.svc.BuyFood(context.Background(), testUser, tt.food, tt.quantity)

			// ASSERT
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.coins, env.pet(t).Coins)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLeft, result.Coins)
			assert.Equal(t, tt.quantity, result.Inventory[tt.food])
			assert.Equal(t, tt.coins-tt.wantLeft, result.Cost)
			assert.Equal(t, 1, env.events[event.FoodBought])
		})
	}
}

func TestService_Shop(t *testing.T) {
	env := newTestEnv(t, rewards.Classic())
	p := domain.NewPet()
	p.Coins = 33
	env.seed(t, p)

	shop, err := env.svc.Shop(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 33, shop.Coins)
	require.Len(t, shop.Items, len(domain.FoodTiers))
	assert.Equal(t, ShopItem{Food: domain.FoodSpecial, Price: 200, Experience: 10}, shop.Items[3])
	assert.Len(t, shop.ExpTable, rewards.ThresholdCount)
}

func TestService_ResolveEventOutcome(t *testing.T) {
	t.Run("death publishes", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())
		env.seed(t, alivePet(domain.SpeciesBird, 4, 1))

		result, err := env.svc.ResolveEventOutcome(context.Background(), testUser, 45, false)

		require.NoError(t, err)
		assert.True(t, result.Died)
		assert.Equal(t, "pet1/death.jpg", result.ImageKey)
		assert.False(t, env.pet(t).Alive)
		assert.Equal(t, 1, env.events[event.PetDied])
		assert.True(t, env.ledger(t).HasDiscovered("pet1/death.jpg"))
	})

	t.Run("failure on a fresh egg is not a death", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())

		result, err := env.svc.ResolveEventOutcome(context.Background(), testUser, 10, false)

		require.NoError(t, err)
		assert.False(t, result.Died)
		assert.Zero(t, env.events[event.PetDied])
		assert.Equal(t, 1, env.events[event.OutcomeResolved])
	})

	t.Run("success pays coins", func(t *testing.T) {
		env := newTestEnv(t, rewards.Classic())
		env.seed(t, alivePet(domain.SpeciesBird, 4, 1))

		result, err := env.svc.ResolveEventOutcome(context.Background(), testUser, 90, true)

		require.NoError(t, err)
		assert.Equal(t, 25, result.CoinsAwarded)
		assert.Equal(t, 25, env.pet(t).Coins)
		assert.Equal(t, 1, env.events[event.CoinsAwarded])
		assert.Equal(t, 1, env.events[event.OutcomeResolved])
	})
}

func TestService_AwardCoins(t *testing.T) {
	env := newTestEnv(t, rewards.Classic())
	ctx := context.Background()

	view, err := env.svc.AwardCoins(ctx, testUser, rewards.DefaultGoalReward, event.SourceGoal)
	require.NoError(t, err)
	assert.Equal(t, 1500, view.Coins)
	assert.Equal(t, "Monthly goal achieved! Earned 1500 coins! (Coins: 1500)", view.Message)

	_, err = env.svc.AwardCoins(ctx, testUser, 0, event.SourceGoal)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_Pokedex(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, rewards.Classic())
	env.seed(t, alivePet(domain.SpeciesBird, 1, 0))
	ctx := context.Background()
	_, err := env.svc.GetPet(ctx, testUser)
	require.NoError(t, err)

	// ACT
	dex, err := env.svc.Pokedex(ctx, testUser)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 70, dex.Total)
	assert.Len(t, dex.Entries, 70)
	assert.Equal(t, 1, dex.Discovered)
	assert.Len(t, dex.Species, len(domain.AllSpecies))
	assert.Equal(t, "pet1/lv1.gif", dex.Entries[0].ImageKey)
	assert.True(t, dex.Entries[0].Discovered)
	for _, entry := range dex.Entries {
		assert.NotEqual(t, UnknownFormName, entry.Name, entry.ImageKey)
	}
}

// brokenLedgerStore fails every ledger write.
type brokenLedgerStore struct {
	repository.Pet
}

func (brokenLedgerStore) SaveLedger(context.Context, string, domain.Ledger) error {
	return errors.New("ledger unavailable")
}

func TestService_FeedSurvivesLedgerFailure(t *testing.T) {
	// ARRANGE
	store := memory.NewStore()
	p := alivePet(domain.SpeciesBird, 0, 0)
	p.Inventory[domain.FoodSpecial] = 1
	require.NoError(t, store.SavePet(context.Background(), testUser, *p))
	catalogue, err := LoadCatalogue()
	require.NoError(t, err)
	svc := NewService(brokenLedgerStore{Pet: store}, testTables(13), &fakeEvolver{variant: 1}, catalogue, event.NewMemoryBus())

	// ACT
	result, err := svc.Feed(context.Background(), testUser, domain.FoodSpecial)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 2, result.LevelsGained)
	saved, err := store.GetPet(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Level)
	assert.Zero(t, saved.Inventory[domain.FoodSpecial])
}

func TestService_WokenEggCannotBeFed(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, testTables(13))
	_, err := env.svc.ResolveEventOutcome(context.Background(), testUser, 200, true)
	require.NoError(t, err)
	p := env.pet(t)
	p.Inventory[domain.FoodSpecial] = 5
	env.seed(t, p)

	// ACT
	result, err := env.svc.Feed(context.Background(), testUser, domain.FoodSpecial)

	// ASSERT
	require.NoError(t, err)
	assert.True(t, result.Rejected)
	assert.Equal(t, MsgNotRaising, result.Message)
	assert.Equal(t, 0, env.pet(t).Level)
	assert.Equal(t, 5, env.pet(t).Inventory[domain.FoodSpecial])

	view, err := env.svc.Start(context.Background(), testUser, domain.SpeciesCute)
	require.NoError(t, err, "a woken egg can still choose its species")
	assert.Equal(t, domain.SpeciesCute, view.Species)
	assert.Equal(t, 5, view.Inventory[domain.FoodSpecial])
}
