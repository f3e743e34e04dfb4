package factory

import (
	"github.com/automoto/heartfall/archetypes"
	"github.com/automoto/heartfall/components"
	"github.com/automoto/heartfall/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const spaceCellSize = 16

// CreateStage creates the stage singleton with its collision space and one
// platform entity per stage rectangle, ground first.
func CreateStage(w donburi.World, data *leveldata.StageData) *donburi.Entry {
	stage := archetypes.Stage.Spawn(w)
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, spaceCellSize, spaceCellSize)
	components.Stage.SetValue(stage, components.StageData{
		Space:  space,
		Width:  data.MapWidth,
		Height: data.MapHeight,
		SpawnX: data.Spawn.X,
		SpawnY: data.Spawn.Y,
	})

	for i, rect := range data.Platforms {
		CreatePlatform(w, space, rect, i)
	}
	return stage
}
