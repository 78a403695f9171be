// Package evolution draws the final form of a pet and rates how rare each form is.
package evolution

import (
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/petimage"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
	"github.com/osse101/PetCalendar_Go/internal/utils"
)

// Rarity thresholds, as a percentage chance of the variant being drawn.
const (
	FiveStarMaxPercent  = 5.0
	FourStarMaxPercent  = 10.0
	ThreeStarMaxPercent = 15.0
	TwoStarMaxPercent   = 25.0
)

// Selector picks evolution variants from the configured weight tables.
type Selector struct {
	tables *rewards.Tables
	rng    func(n int) int // returns [0, n); injectable for testing
}

// NewSelector creates a selector backed by math/rand.
func NewSelector(tables *rewards.Tables) *Selector {
	return NewSelectorWithRand(tables, utils.RandomIntn)
}

// NewSelectorWithRand creates a selector with a custom random source.
func NewSelectorWithRand(tables *rewards.Tables, rng func(n int) int) *Selector {
	return &Selector{tables: tables, rng: rng}
}

// Select draws a variant (1-based) for the species, weighted by its table.
// Species without weights fall back to a uniform draw over their variants.
func (s *Selector) Select(species domain.SpeciesID) int {
	weights := s.tables.Weights(species)
	total := utils.SumInts(weights)
	if len(weights) == 0 || total <= 0 {
		return s.rng(species.VariantCount()) + 1
	}
	return utils.WeightedIndex(weights, s.rng(total)) + 1
}

// Probability returns the chance, in percent, of drawing the variant.
func (s *Selector) Probability(species domain.SpeciesID, variant int) (float64, bool) {
	weights := s.tables.Weights(species)
	total := utils.SumInts(weights)
	if total <= 0 || variant < 1 || variant > len(weights) {
		return 0, false
	}
	return float64(weights[variant-1]) / float64(total) * 100, true
}

// RarityStars rates a terminal image key from 1 to 5 stars.
// Non-terminal keys have no rarity.
func (s *Selector) RarityStars(imageKey string) (int, bool) {
	species, variant, ok := petimage.ParseTerminal(imageKey)
	if !ok {
		return 0, false
	}
	probability, ok := s.Probability(species, variant)
	if !ok {
		return 0, false
	}
	return StarsFromProbability(probability), true
}

// StarsFromProbability maps a draw chance in percent to a star rating.
func StarsFromProbability(probability float64) int {
	switch {
	case probability <= FiveStarMaxPercent:
		return 5
	case probability <= FourStarMaxPercent:
		return 4
	case probability <= ThreeStarMaxPercent:
		return 3
	case probability <= TwoStarMaxPercent:
		return 2
	default:
		return 1
	}
}
