package scenes

import "github.com/yohamta/donburi/ecs"

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)
