package systems

import (
	"github.com/automoto/heartfall/components"
	"github.com/yohamta/donburi"
)

// UpdateHUD expires the power-up countdown. It runs while frozen too.
func UpdateHUD(w donburi.World) {
	if e, ok := gameEntry(w); ok {
		components.PowerUpStatus.Get(e).Update(Now(w))
	}
}
