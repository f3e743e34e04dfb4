package factory

import (
	"github.com/automoto/heartfall/assets/animations"
	cfg "github.com/automoto/heartfall/config"
)

// LoadHeroAnimations is the first step of character setup. Clips that fail
// are already logged; the returned set holds the rest.
func LoadHeroAnimations(src animations.SheetSource) *animations.Set {
	set, _ := animations.LoadAnimations(src, cfg.HeroClips)
	return set
}
