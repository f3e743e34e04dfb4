package components

import (
	"github.com/automoto/heartfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlatformData is a static rectangle the character can land on. The
// geometry lives in a resolv object registered in the stage space.
type PlatformData struct {
	*resolv.Object
	Order  int // insertion order; the ground is 0
	Ground bool
}

func (p PlatformData) Top() float64 {
	return p.Y
}

// Lands is the straddle test: descending, horizontally overlapping within
// buffer, above the surface before the step and at or below it after.
func (p PlatformData) Lands(x, prevY, y, velocityY, buffer float64) bool {
	return velocityY > 0 &&
		gamemath.SpanOverlaps(x, buffer, p.X, p.W) &&
		gamemath.Straddles(prevY, y, p.Y)
}

var Platform = donburi.NewComponentType[PlatformData]()
