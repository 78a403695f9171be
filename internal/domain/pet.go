package domain

// SpeciesID identifies a pet family. Zero means no species has been chosen.
type SpeciesID int

// Pet species
const (
	SpeciesNone   SpeciesID = 0
	SpeciesBird   SpeciesID = 1
	SpeciesBeast  SpeciesID = 2
	SpeciesCute   SpeciesID = 3
	SpeciesFire   SpeciesID = 4
	SpeciesSushi  SpeciesID = 5
	SpeciesHybrid SpeciesID = 6
)

// Species level limits
const (
	BirdMaxLevel    = 10
	DefaultMaxLevel = 5

	BirdVariantCount    = 10
	DefaultVariantCount = 5

	BirdDeathThreshold    = 5
	DefaultDeathThreshold = 3
)

// AllSpecies lists every selectable species in display order.
var AllSpecies = []SpeciesID{SpeciesBird, SpeciesBeast, SpeciesCute, SpeciesFire, SpeciesSushi, SpeciesHybrid}

// Valid reports whether s is a selectable species.
func (s SpeciesID) Valid() bool {
	return s >= SpeciesBird && s <= SpeciesHybrid
}

// MaxLevel returns the final level of the species.
func (s SpeciesID) MaxLevel() int {
	if s == SpeciesBird {
		return BirdMaxLevel
	}
	return DefaultMaxLevel
}

// VariantCount returns how many terminal forms the species can evolve into.
func (s SpeciesID) VariantCount() int {
	if s == SpeciesBird {
		return BirdVariantCount
	}
	return DefaultVariantCount
}

// DeathThreshold is the highest level at which a failed event kills the pet.
func (s SpeciesID) DeathThreshold() int {
	if s == SpeciesBird {
		return BirdDeathThreshold
	}
	return DefaultDeathThreshold
}

// FoodTier names one of the four food grades sold in the shop.
type FoodTier string

// Food tiers
const (
	FoodBasic   FoodTier = "basic"
	FoodGood    FoodTier = "good"
	FoodPremium FoodTier = "premium"
	FoodSpecial FoodTier = "special"
)

// FoodTiers lists the food tiers from cheapest to most expensive.
var FoodTiers = []FoodTier{FoodBasic, FoodGood, FoodPremium, FoodSpecial}

// Valid reports whether f is a known food tier.
func (f FoodTier) Valid() bool {
	for _, tier := range FoodTiers {
		if f == tier {
			return true
		}
	}
	return false
}

// Inventory maps each food tier to the number of units held.
type Inventory map[FoodTier]int

// NewInventory returns an inventory with every tier present and empty.
func NewInventory() Inventory {
	inv := make(Inventory, len(FoodTiers))
	for _, tier := range FoodTiers {
		inv[tier] = 0
	}
	return inv
}

// Clone returns a copy that always carries every tier.
func (inv Inventory) Clone() Inventory {
	out := NewInventory()
	for tier, count := range inv {
		out[tier] = count
	}
	return out
}

// Total returns the number of food units across all tiers.
func (inv Inventory) Total() int {
	total := 0
	for _, count := range inv {
		total += count
	}
	return total
}

// Pet is the per-user virtual pet record.
type Pet struct {
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	Coins      int       `json:"coins"`
	Alive      bool      `json:"alive"`
	Started    bool      `json:"started"`
	Species    SpeciesID `json:"species_id,omitempty"`
	Evolution  int       `json:"evolution_variant,omitempty"` // set only at max level
	Inventory  Inventory `json:"inventory"`
	Message    string    `json:"message"`
}

// MsgNewPet is shown on a pet that has never been started.
const MsgNewPet = "Raise your pet from an egg!"

// NewPet returns the never-started egg state.
func NewPet() *Pet {
	return &Pet{
		Inventory: NewInventory(),
		Message:   MsgNewPet,
	}
}

// Clone returns a deep copy of the pet.
func (p *Pet) Clone() *Pet {
	out := *p
	out.Inventory = p.Inventory.Clone()
	return &out
}

// MaxLevel returns the final level for the pet's species.
func (p *Pet) MaxLevel() int {
	return p.Species.MaxLevel()
}

// AtMaxLevel reports whether the pet has reached its final form.
func (p *Pet) AtMaxLevel() bool {
	return p.Level >= p.MaxLevel()
}
