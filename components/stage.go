package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// StageData is the singleton describing the loaded stage.
type StageData struct {
	Space  *resolv.Space
	Width  int
	Height int
	SpawnX float64
	SpawnY float64
}

var Stage = donburi.NewComponentType[StageData]()
