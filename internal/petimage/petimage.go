// Package petimage builds and parses the image keys that identify each pet form.
//
// Keys look like "pet<species>/<form>.<ext>": lv<N>.gif for growing forms,
// lv<max>_type<variant>.gif for terminal forms, egg.jpg and death.jpg.
package petimage

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

const (
	formExt  = "gif"
	stillExt = "jpg"
)

// GenericEgg is shown before any species has been chosen.
var GenericEgg = Egg(domain.SpeciesBird)

var terminalPattern = regexp.MustCompile(`^pet(\d+)/lv(\d+)_type(\d+)\.gif$`)

// Egg returns the egg key of a species.
func Egg(species domain.SpeciesID) string {
	return fmt.Sprintf("pet%d/egg.%s", species, stillExt)
}

// Death returns the death key of a species.
func Death(species domain.SpeciesID) string {
	return fmt.Sprintf("pet%d/death.%s", species, stillExt)
}

// Level returns the key of a growing (non-terminal) form.
func Level(species domain.SpeciesID, level int) string {
	return fmt.Sprintf("pet%d/lv%d.%s", species, level, formExt)
}

// Terminal returns the key of a final evolution variant.
func Terminal(species domain.SpeciesID, variant int) string {
	return fmt.Sprintf("pet%d/lv%d_type%d.%s", species, species.MaxLevel(), variant, formExt)
}

// ParseTerminal extracts species and variant from a terminal key.
func ParseTerminal(key string) (domain.SpeciesID, int, bool) {
	m := terminalPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, 0, false
	}
	species, _ := strconv.Atoi(m[1])
	level, _ := strconv.Atoi(m[2])
	variant, _ := strconv.Atoi(m[3])
	sp := domain.SpeciesID(species)
	if !sp.Valid() || level != sp.MaxLevel() {
		return 0, 0, false
	}
	return sp, variant, true
}

// IsEgg reports whether the key denotes an egg, which is never catalogued.
func IsEgg(key string) bool {
	return strings.HasSuffix(key, "/egg."+stillExt) || strings.HasPrefix(key, "egg")
}

// Form returns the display key for the pet state. It has no side effects;
// callers that show the key to the player must register the discovery.
func Form(p *domain.Pet) string {
	if !p.Alive {
		if p.Started && p.Species.Valid() {
			return Death(p.Species)
		}
		if p.Species.Valid() {
			return Egg(p.Species)
		}
		return GenericEgg
	}

	if p.Level == 0 || !p.Species.Valid() {
		if p.Species.Valid() {
			return Egg(p.Species)
		}
		return GenericEgg
	}

	if p.Level >= p.Species.MaxLevel() {
		return Terminal(p.Species, p.Evolution)
	}
	return Level(p.Species, p.Level)
}
