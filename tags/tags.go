package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
	Hazard      = donburi.NewTag().SetName("Hazard")
	PowerUp     = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for stage objects
const (
	ResolvSolid     = "solid"
	ResolvGround    = "ground"
	ResolvCharacter = "Character"
)
