package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/heartfall/components"
	"github.com/yohamta/donburi"
)

// UpdateCharacter steps the character controller. It runs in every phase
// so the body keeps obeying gravity during the death sequence.
func UpdateCharacter(w donburi.World) {
	e, ok := characterEntry(w)
	if !ok {
		return
	}
	components.Character.Get(e).Update(Platforms(w), Now(w))
}

// Platforms returns the stage platforms in insertion order, ground first.
func Platforms(w donburi.World) []components.PlatformData {
	var platforms []components.PlatformData
	components.Platform.Each(w, func(e *donburi.Entry) {
		platforms = append(platforms, *components.Platform.Get(e))
	})
	slices.SortFunc(platforms, func(a, b components.PlatformData) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return platforms
}
