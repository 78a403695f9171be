package pet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/petimage"
)

// UnknownFormName is shown for forms without a registered display name.
const UnknownFormName = "???"

//go:embed data/forms.json
var formsJSON []byte

// SpeciesInfo describes one pet family.
type SpeciesInfo struct {
	ID          domain.SpeciesID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// Catalogue holds display metadata for every species and form.
type Catalogue struct {
	Species []SpeciesInfo     `json:"species"`
	Names   map[string]string `json:"names"`
}

// LoadCatalogue parses the embedded form catalogue.
func LoadCatalogue() (*Catalogue, error) {
	var c Catalogue
	if err := json.Unmarshal(formsJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to parse form catalogue: %w", err)
	}
	sort.Slice(c.Species, func(i, j int) bool { return c.Species[i].ID < c.Species[j].ID })
	return &c, nil
}

// FormName returns the display name of an image key.
func (c *Catalogue) FormName(imageKey string) string {
	if name, ok := c.Names[imageKey]; ok {
		return name
	}
	return UnknownFormName
}

// SpeciesInfo returns metadata for the species, if known.
func (c *Catalogue) SpeciesInfo(id domain.SpeciesID) (SpeciesInfo, bool) {
	for _, s := range c.Species {
		if s.ID == id {
			return s, true
		}
	}
	return SpeciesInfo{}, false
}

// Forms lists every catalogued form of a species in pokedex order:
// growing levels, terminal variants, then the death form.
func Forms(species domain.SpeciesID) []string {
	keys := make([]string, 0, species.MaxLevel()+species.VariantCount())
	for level := 1; level < species.MaxLevel(); level++ {
		keys = append(keys, petimage.Level(species, level))
	}
	for variant := 1; variant <= species.VariantCount(); variant++ {
		keys = append(keys, petimage.Terminal(species, variant))
	}
	return append(keys, petimage.Death(species))
}
