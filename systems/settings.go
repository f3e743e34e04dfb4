package systems

import (
	"github.com/automoto/heartfall/components"
	"github.com/yohamta/donburi"
)

func settings(w donburi.World) (*components.SettingsData, bool) {
	e, ok := components.Settings.First(w)
	if !ok {
		return nil, false
	}
	return components.Settings.Get(e), true
}

// ToggleFullscreen flips the fullscreen request. The scene applies it to
// the window.
func ToggleFullscreen(w donburi.World) {
	if s, ok := settings(w); ok {
		s.Fullscreen = !s.Fullscreen
		SaveCurrentSettings(s)
	}
}

// ToggleDebug flips the debug overlay. Not persisted.
func ToggleDebug(w donburi.World) {
	if s, ok := settings(w); ok {
		s.Debug = !s.Debug
	}
}

// DebugEnabled reports whether the debug overlay should be drawn.
func DebugEnabled(w donburi.World) bool {
	s, ok := settings(w)
	return ok && s.Debug
}
