package scenes

import (
	"strings"

	"github.com/automoto/heartfall/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// keyboard turns ebiten key transitions into KeyEvents.
type keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// poll publishes this frame's releases before presses so a quick
// tap-and-switch ends with the newer key held.
func (k *keyboard) poll(w donburi.World) {
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		components.KeyEvents.Publish(w, components.KeyEvent{Key: keyName(key), Down: false})
	}
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		components.KeyEvents.Publish(w, components.KeyEvent{Key: keyName(key), Down: true})
	}
}

// keyName maps an ebiten key to the lowercase names used by the bindings:
// "ArrowRight" -> "arrowright", "Digit2" -> "2", "F11" -> "f11".
func keyName(k ebiten.Key) string {
	name := strings.ToLower(k.String())
	return strings.TrimPrefix(name, "digit")
}
