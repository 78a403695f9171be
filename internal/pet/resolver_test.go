package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/petimage"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
)

// fakeEvolver always draws the same variant and rates every terminal form.
type fakeEvolver struct {
	variant int
	calls   int
}

func (f *fakeEvolver) Select(domain.SpeciesID) int {
	f.calls++
	return f.variant
}

func (f *fakeEvolver) RarityStars(imageKey string) (int, bool) {
	if _, _, ok := petimage.ParseTerminal(imageKey); ok {
		return 3, true
	}
	return 0, false
}

// testTables returns the classic curve with the special tier worth exp.
func testTables(specialExp int) *rewards.Tables {
	tables := rewards.Classic()
	tables.FoodExperience[domain.FoodSpecial] = specialExp
	return tables
}

func alivePet(species domain.SpeciesID, level, exp int) *domain.Pet {
	p := domain.NewPet()
	p.Alive = true
	p.Started = true
	p.Species = species
	p.Level = level
	p.Experience = exp
	return p
}

func TestFeed_SpansTwoThresholds(t *testing.T) {
	// ARRANGE
	resolver := NewResolver(testTables(13), &fakeEvolver{variant: 1})
	p := alivePet(domain.SpeciesBird, 0, 0)
	p.Inventory[domain.FoodSpecial] = 1

	// ACT
	result, err := resolver.Feed(p, domain.FoodSpecial)

	// ASSERT
	require.NoError(t, err)
	assert.False(t, result.Rejected)
	assert.Equal(t, 2, result.LevelsGained)
	assert.Equal(t, 0, result.StartLevel)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 1, p.Experience)
	assert.Equal(t, 10, result.NextRequiredExp)
	assert.Equal(t, "pet1/lv2.gif", result.ImageKey)
	assert.Equal(t, 0, p.Inventory[domain.FoodSpecial])
	assert.Equal(t, "2 levels up!!! (Lv.0 -> Lv.2)", p.Message)
}

func TestFeed_EvolvesAtMaxLevel(t *testing.T) {
	// ARRANGE
	tables := rewards.Classic()
	tables.ExpToNextLevel[4] = 5
	tables.FoodExperience[domain.FoodGood] = 6
	evolver := &fakeEvolver{variant: 4}
	resolver := NewResolver(tables, evolver)
	p := alivePet(domain.SpeciesBeast, 4, 0)
	p.Inventory[domain.FoodGood] = 2

	// ACT
	result, err := resolver.Feed(p, domain.FoodGood)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 4, p.Evolution)
	assert.Equal(t, "pet2/lv5_type4.gif", result.ImageKey)
	assert.Equal(t, 1, evolver.calls)
	assert.Equal(t, 0, result.NextRequiredExp)

	t.Run("further feeding is rejected", func(t *testing.T) {
		again, err := resolver.Feed(p, domain.FoodGood)

		require.NoError(t, err)
		assert.True(t, again.Rejected)
		assert.Equal(t, MsgFinalForm, p.Message)
		assert.Equal(t, 1, p.Inventory[domain.FoodGood], "no food consumed")
		assert.Equal(t, 1, evolver.calls, "variant is drawn once")
	})
}

func TestFeed_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		pet     func() *domain.Pet
		food    domain.FoodTier
		message string
	}{
		{
			name: "not alive",
			pet: func() *domain.Pet {
				p := domain.NewPet()
				p.Inventory[domain.FoodBasic] = 3
				return p
			},
			food:    domain.FoodBasic,
			message: MsgNotRaising,
		},
		{
			name: "awake egg without species",
			pet: func() *domain.Pet {
				p := domain.NewPet()
				p.Alive = true
				p.Started = true
				p.Inventory[domain.FoodSpecial] = 10
				return p
			},
			food:    domain.FoodSpecial,
			message: MsgNotRaising,
		},
		{
			name:    "no food of that tier",
			pet:     func() *domain.Pet { return alivePet(domain.SpeciesCute, 1, 0) },
			food:    domain.FoodPremium,
			message: "You have no premium food!",
		},
		{
			name: "bird at level ten",
			pet: func() *domain.Pet {
				p := alivePet(domain.SpeciesBird, 10, 0)
				p.Evolution = 2
				p.Inventory[domain.FoodBasic] = 1
				return p
			},
			food:    domain.FoodBasic,
			message: MsgFinalForm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
			p := tt.pet()
			before := p.Clone()

			// ACT
			result, err := resolver.Feed(p, tt.food)

			// ASSERT
			require.NoError(t, err)
			assert.True(t, result.Rejected)
			assert.Equal(t, 0, result.LevelsGained)
			assert.Equal(t, tt.message, p.Message)
			before.Message = p.Message
			assert.Equal(t, before, p, "only the message changes")
		})
	}
}

func TestFeed_UnknownFood(t *testing.T) {
	resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
	p := alivePet(domain.SpeciesFire, 1, 0)

	_, err := resolver.Feed(p, domain.FoodTier("caviar"))

	assert.ErrorIs(t, err, domain.ErrInvalidFood)
}

func TestFeed_ExperienceOnly(t *testing.T) {
	resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
	p := alivePet(domain.SpeciesSushi, 1, 0)
	p.Inventory[domain.FoodGood] = 1

	result, err := resolver.Feed(p, domain.FoodGood)

	require.NoError(t, err)
	assert.Equal(t, 0, result.LevelsGained)
	assert.Equal(t, 3, p.Experience)
	assert.Equal(t, "EXP +3! (EXP: 3/7)", p.Message)
}

func TestResolveOutcome_Success(t *testing.T) {
	tests := []struct {
		duration int
		coins    int
	}{
		{duration: 29, coins: 5},
		{duration: 30, coins: 10},
		{duration: 59, coins: 10},
		{duration: 60, coins: 25},
		{duration: 119, coins: 25},
		{duration: 120, coins: 48},
		{duration: 180, coins: 140},
	}

	for _, tt := range tests {
		// ARRANGE
		resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
		p := alivePet(domain.SpeciesBird, 2, 4)
		p.Coins = 10

		// ACT
		result, err := resolver.ResolveOutcome(p, tt.duration, true)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, tt.coins, result.CoinsAwarded, "duration %d", tt.duration)
		assert.Equal(t, 10+tt.coins, p.Coins)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 4, p.Experience)
	}
}

func TestResolveOutcome_SuccessWakesEgg(t *testing.T) {
	resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
	p := domain.NewPet()

	result, err := resolver.ResolveOutcome(p, 45, true)

	require.NoError(t, err)
	assert.True(t, p.Alive)
	assert.True(t, p.Started)
	assert.True(t, result.Alive)
	assert.Equal(t, "Task complete! Earned 10 coins! (Coins: 10)", result.Message)
}

func TestResolveOutcome_Death(t *testing.T) {
	tests := []struct {
		name    string
		species domain.SpeciesID
		level   int
	}{
		{name: "bird at threshold", species: domain.SpeciesBird, level: 5},
		{name: "bird hatchling", species: domain.SpeciesBird, level: 0},
		{name: "beast at threshold", species: domain.SpeciesBeast, level: 3},
		{name: "fire level one", species: domain.SpeciesFire, level: 1},
	}

	for _, tt := range tests {
		for _, duration := range []int{10, 45, 90, 150, 300} {
			// ARRANGE
			resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
			p := alivePet(tt.species, tt.level, 2)

			// ACT
			result, err := resolver.ResolveOutcome(p, duration, false)

			// ASSERT
			require.NoError(t, err, tt.name)
			assert.True(t, result.Died, "%s duration %d", tt.name, duration)
			assert.False(t, p.Alive)
			assert.Equal(t, 0, p.Level)
			assert.Equal(t, 0, p.Experience)
			assert.Equal(t, MsgPetDied, p.Message)
		}
	}
}

func TestResolveOutcome_LevelDown(t *testing.T) {
	tests := []struct {
		name      string
		species   domain.SpeciesID
		level     int
		duration  int
		wantLevel int
		wantLost  int
	}{
		{name: "short event", species: domain.SpeciesBird, level: 8, duration: 20, wantLevel: 7, wantLost: 1},
		{name: "two hour event", species: domain.SpeciesBird, level: 8, duration: 150, wantLevel: 5, wantLost: 3},
		{name: "long event", species: domain.SpeciesBird, level: 6, duration: 200, wantLevel: 2, wantLost: 4},
		{name: "evolved beast", species: domain.SpeciesBeast, level: 5, duration: 90, wantLevel: 3, wantLost: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
			p := alivePet(tt.species, tt.level, 3)

			result, err := resolver.ResolveOutcome(p, tt.duration, false)

			require.NoError(t, err)
			assert.False(t, result.Died)
			assert.True(t, p.Alive)
			assert.Equal(t, tt.wantLevel, p.Level)
			assert.Equal(t, tt.wantLost, result.LevelsLost)
			assert.Equal(t, 0, p.Experience)
		})
	}
}

func TestResolveOutcome_RejectsNonPositiveDuration(t *testing.T) {
	resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
	p := alivePet(domain.SpeciesBird, 7, 0)

	_, err := resolver.ResolveOutcome(p, 0, false)

	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	assert.Equal(t, 7, p.Level)
}

func TestResolveOutcome_FailureWithoutLivingPet(t *testing.T) {
	tests := []struct {
		name string
		pet  func() *domain.Pet
	}{
		{name: "never started", pet: domain.NewPet},
		{
			name: "already dead",
			pet: func() *domain.Pet {
				p := alivePet(domain.SpeciesSushi, 0, 0)
				p.Alive = false
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			resolver := NewResolver(rewards.Classic(), &fakeEvolver{variant: 1})
			p := tt.pet()

			// ACT
			result, err := resolver.ResolveOutcome(p, 10, false)

			// ASSERT
			require.NoError(t, err)
			assert.False(t, result.Died, "a pet that was not alive cannot die again")
			assert.False(t, p.Alive)
			assert.Equal(t, 0, p.Level)
		})
	}
}
