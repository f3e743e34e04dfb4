// Package leveldata provides TMX stage parsing.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// StageData holds everything the game reads from a stage file.
type StageData struct {
	// Platforms in file order. The ground platform is always first.
	Platforms []PlatformRect
	Spawn     SpawnPoint
	MapWidth  int
	MapHeight int
}

// PlatformRect is a static ledge or the ground.
type PlatformRect struct {
	Name       string
	X, Y, W, H float64
	Ground     bool
}

// SpawnPoint is where the character's feet start.
type SpawnPoint struct {
	X, Y float64
}
