package pet

import (
	"fmt"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/petimage"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
)

// VariantSelector draws a final evolution variant for a species.
type VariantSelector interface {
	Select(species domain.SpeciesID) int
}

// FeedResult describes the pet after a feeding action.
type FeedResult struct {
	Level           int              `json:"level"`
	Experience      int              `json:"exp"`
	NextRequiredExp int              `json:"next_exp"`
	Message         string           `json:"message"`
	ImageKey        string           `json:"image"`
	LevelsGained    int              `json:"levels_gained"`
	StartLevel      int              `json:"start_level"`
	Species         domain.SpeciesID `json:"species_id,omitempty"`
	Evolution       int              `json:"evolution_variant,omitempty"`
	Inventory       domain.Inventory `json:"inventory"`
	Rejected        bool             `json:"rejected,omitempty"` // precondition failed, state untouched
}

// OutcomeResult describes the pet after an event outcome was applied.
type OutcomeResult struct {
	Success         bool             `json:"success"`
	DurationMinutes int              `json:"duration_minutes"`
	CoinsAwarded    int              `json:"coins_awarded"`
	LevelsLost      int              `json:"levels_lost"`
	Died            bool             `json:"died"`
	Level           int              `json:"pet_level"`
	Alive           bool             `json:"pet_alive"`
	Coins           int              `json:"pet_coins"`
	ImageKey        string           `json:"pet_image"`
	Message         string           `json:"pet_message"`
	Experience      int              `json:"pet_exp"`
	NextRequiredExp int              `json:"next_exp"`
	Inventory       domain.Inventory `json:"inventory"`
}

// Resolver applies the progression rules to a pet in memory. It performs no
// I/O; the service persists whatever the resolver produces.
type Resolver struct {
	tables   *rewards.Tables
	selector VariantSelector
}

// NewResolver creates a resolver for the given tables.
func NewResolver(tables *rewards.Tables, selector VariantSelector) *Resolver {
	return &Resolver{tables: tables, selector: selector}
}

// Tables returns the reward tables the resolver uses.
func (r *Resolver) Tables() *rewards.Tables {
	return r.tables
}

// Feed consumes one unit of food and resolves any level-ups. The pet is
// mutated in place unless a precondition fails, in which case only the
// message changes and the result is marked Rejected.
func (r *Resolver) Feed(p *domain.Pet, food domain.FoodTier) (*FeedResult, error) {
	gain, ok := r.tables.Experience(food)
	if !ok || !food.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFood, food)
	}

	if !p.Alive || !p.Species.Valid() {
		p.Message = MsgNotRaising
		return r.feedResult(p, p.Level, 0, true), nil
	}

	maxLevel := p.MaxLevel()
	if p.Level >= maxLevel {
		p.Message = MsgFinalForm
		return r.feedResult(p, p.Level, 0, true), nil
	}

	if p.Inventory[food] <= 0 {
		p.Message = fmt.Sprintf(MsgNoFoodFormat, food)
		return r.feedResult(p, p.Level, 0, true), nil
	}

	p.Inventory[food]--
	p.Experience += gain

	startLevel := p.Level
	levelsGained := 0
	for p.Level < maxLevel {
		required, ok := r.tables.Threshold(p.Level)
		if !ok || p.Experience < required {
			break
		}
		p.Experience -= required
		p.Level++
		levelsGained++
	}

	switch {
	case levelsGained == 0:
		p.Message = fmt.Sprintf(MsgExpGainedFormat, gain, p.Experience, r.tables.NextRequired(p.Level, p.Species))
	case p.Level == maxLevel:
		p.Evolution = r.selector.Select(p.Species)
		p.Message = fmt.Sprintf(MsgEvolvedFormat, p.Evolution, startLevel, p.Level)
	case levelsGained == 1:
		p.Message = fmt.Sprintf(MsgLevelUpFormat, p.Level)
	default:
		p.Message = fmt.Sprintf(MsgMultiLevelFormat, levelsGained, startLevel, p.Level)
	}

	return r.feedResult(p, startLevel, levelsGained, false), nil
}

func (r *Resolver) feedResult(p *domain.Pet, startLevel, levelsGained int, rejected bool) *FeedResult {
	return &FeedResult{
		Level:           p.Level,
		Experience:      p.Experience,
		NextRequiredExp: r.tables.NextRequired(p.Level, p.Species),
		Message:         p.Message,
		ImageKey:        petimage.Form(p),
		LevelsGained:    levelsGained,
		StartLevel:      startLevel,
		Species:         p.Species,
		Evolution:       p.Evolution,
		Inventory:       p.Inventory.Clone(),
		Rejected:        rejected,
	}
}

// ResolveOutcome applies the reward or penalty of a finished event.
func (r *Resolver) ResolveOutcome(p *domain.Pet, durationMinutes int, success bool) (*OutcomeResult, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", domain.ErrInvalidTimeRange, durationMinutes)
	}

	result := &OutcomeResult{Success: success, DurationMinutes: durationMinutes}
	wasAlive := p.Alive

	if success {
		p.Alive = true
		p.Started = true
		result.CoinsAwarded = rewards.SuccessCoinReward(durationMinutes)
		p.Coins += result.CoinsAwarded
		p.Message = fmt.Sprintf(MsgTaskDoneFormat, result.CoinsAwarded, p.Coins)
	} else if p.Level <= p.Species.DeathThreshold() {
		p.Alive = false
		p.Level = 0
		p.Experience = 0
		result.Died = wasAlive
		p.Message = MsgPetDied
	} else {
		levelDown := rewards.FailureLevelDown(durationMinutes)
		before := p.Level
		p.Level = max(0, p.Level-levelDown)
		p.Experience = 0
		result.LevelsLost = before - p.Level
		p.Message = fmt.Sprintf(MsgLevelDownFormat, levelDown, p.Level)
	}

	result.Level = p.Level
	result.Alive = p.Alive
	result.Coins = p.Coins
	result.ImageKey = petimage.Form(p)
	result.Message = p.Message
	result.Experience = p.Experience
	result.NextRequiredExp = r.tables.NextRequired(p.Level, p.Species)
	result.Inventory = p.Inventory.Clone()
	return result, nil
}
