package rewards

import (
	"fmt"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/utils"
)

// Tables holds every tunable number of the pet economy.
type Tables struct {
	ExpToNextLevel   []int                      `json:"exp_to_next_level"`
	FoodExperience   map[domain.FoodTier]int    `json:"food_experience"`
	FoodPrice        map[domain.FoodTier]int    `json:"food_price"`
	EvolutionWeights map[domain.SpeciesID][]int `json:"evolution_weights"` // index 0 is variant 1
	GoalReward       int                        `json:"goal_reward"`
}

func defaultWeights() map[domain.SpeciesID][]int {
	return map[domain.SpeciesID][]int{
		domain.SpeciesBird:   {18, 13, 13, 13, 8, 8, 8, 8, 8, 3},
		domain.SpeciesBeast:  {30, 25, 20, 8, 4},
		domain.SpeciesCute:   {30, 15, 10, 7, 5},
		domain.SpeciesFire:   {30, 15, 10, 7, 5},
		domain.SpeciesSushi:  {30, 25, 15, 7, 5},
		domain.SpeciesHybrid: {30, 25, 10, 7, 3},
	}
}

func defaultPrices() map[domain.FoodTier]int {
	return map[domain.FoodTier]int{
		domain.FoodBasic:   1,
		domain.FoodGood:    50,
		domain.FoodPremium: 100,
		domain.FoodSpecial: 200,
	}
}

// Classic returns the slower levelling curve with 1:3:5:10 food values.
func Classic() *Tables {
	return &Tables{
		ExpToNextLevel: []int{5, 7, 10, 14, 20, 25, 33, 46, 55, 70},
		FoodExperience: map[domain.FoodTier]int{
			domain.FoodBasic:   1,
			domain.FoodGood:    3,
			domain.FoodPremium: 5,
			domain.FoodSpecial: 10,
		},
		FoodPrice:        defaultPrices(),
		EvolutionWeights: defaultWeights(),
		GoalReward:       DefaultGoalReward,
	}
}

// Accelerated returns the fast-start curve with 1:6:14:32 food values.
func Accelerated() *Tables {
	return &Tables{
		ExpToNextLevel: []int{1, 3, 5, 10, 20, 30, 40, 50, 60, 70},
		FoodExperience: map[domain.FoodTier]int{
			domain.FoodBasic:   1,
			domain.FoodGood:    6,
			domain.FoodPremium: 14,
			domain.FoodSpecial: 32,
		},
		FoodPrice:        defaultPrices(),
		EvolutionWeights: defaultWeights(),
		GoalReward:       DefaultGoalReward,
	}
}

// Preset returns the named built-in tables.
func Preset(name string) (*Tables, error) {
	switch name {
	case "", PresetClassic:
		return Classic(), nil
	case PresetAccelerated:
		return Accelerated(), nil
	default:
		return nil, fmt.Errorf("unknown reward preset %q", name)
	}
}

// Load builds the tables from a preset and an optional JSON override file.
// Fields present in the file replace the preset's value wholesale.
func Load(preset, path string) (*Tables, error) {
	tables, err := Preset(preset)
	if err != nil {
		return nil, err
	}
	if path != "" {
		var override Tables
		if err := utils.LoadJSONStrict(path, &override); err != nil {
			return nil, fmt.Errorf("failed to load rewards file: %w", err)
		}
		tables.merge(&override)
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (t *Tables) merge(o *Tables) {
	if len(o.ExpToNextLevel) > 0 {
		t.ExpToNextLevel = o.ExpToNextLevel
	}
	if len(o.FoodExperience) > 0 {
		t.FoodExperience = o.FoodExperience
	}
	if len(o.FoodPrice) > 0 {
		t.FoodPrice = o.FoodPrice
	}
	if len(o.EvolutionWeights) > 0 {
		t.EvolutionWeights = o.EvolutionWeights
	}
	if o.GoalReward > 0 {
		t.GoalReward = o.GoalReward
	}
}

// Validate checks that the tables cover every level, food tier and species.
func (t *Tables) Validate() error {
	if len(t.ExpToNextLevel) != ThresholdCount {
		return fmt.Errorf("exp_to_next_level must have %d entries, got %d", ThresholdCount, len(t.ExpToNextLevel))
	}
	for level, exp := range t.ExpToNextLevel {
		if exp <= 0 {
			return fmt.Errorf("exp_to_next_level[%d] must be positive", level)
		}
	}
	for _, tier := range domain.FoodTiers {
		if t.FoodExperience[tier] <= 0 {
			return fmt.Errorf("food_experience[%s] must be positive", tier)
		}
		price, ok := t.FoodPrice[tier]
		if !ok || price < 0 {
			return fmt.Errorf("food_price[%s] must be set and non-negative", tier)
		}
	}
	for _, species := range domain.AllSpecies {
		weights := t.EvolutionWeights[species]
		if len(weights) != species.VariantCount() {
			return fmt.Errorf("evolution_weights[%d] must have %d entries", species, species.VariantCount())
		}
		for i, w := range weights {
			if w <= 0 {
				return fmt.Errorf("evolution_weights[%d][%d] must be positive", species, i)
			}
		}
	}
	if t.GoalReward < 0 {
		return fmt.Errorf("goal_reward must be non-negative")
	}
	return nil
}

// Threshold returns the experience needed to advance from level to level+1.
func (t *Tables) Threshold(level int) (int, bool) {
	if level < 0 || level >= len(t.ExpToNextLevel) {
		return 0, false
	}
	return t.ExpToNextLevel[level], true
}

// NextRequired returns the threshold shown to the player, or 0 once the
// species has no further level.
func (t *Tables) NextRequired(level int, species domain.SpeciesID) int {
	if level >= species.MaxLevel() {
		return 0
	}
	exp, _ := t.Threshold(level)
	return exp
}

// Experience returns the experience granted by one unit of food.
func (t *Tables) Experience(food domain.FoodTier) (int, bool) {
	exp, ok := t.FoodExperience[food]
	return exp, ok
}

// Price returns the coin price of one unit of food.
func (t *Tables) Price(food domain.FoodTier) (int, bool) {
	price, ok := t.FoodPrice[food]
	return price, ok
}

// Weights returns the evolution weights of a species, nil when unknown.
func (t *Tables) Weights(species domain.SpeciesID) []int {
	return t.EvolutionWeights[species]
}

// SuccessCoinReward returns the coins paid for completing an event.
func SuccessCoinReward(durationMinutes int) int {
	for _, tier := range durationTiers {
		if durationMinutes < tier.Below {
			return tier.Coins
		}
	}
	return longEventCoins
}

// FailureLevelDown returns how many levels a surviving pet loses for a missed event.
func FailureLevelDown(durationMinutes int) int {
	for _, tier := range durationTiers {
		if durationMinutes < tier.Below {
			return tier.LevelDown
		}
	}
	return longEventLevelDown
}
