package factory

import (
	"github.com/automoto/heartfall/archetypes"
	"github.com/automoto/heartfall/components"
	"github.com/automoto/heartfall/shared/leveldata"
	"github.com/automoto/heartfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, space *resolv.Space, rect leveldata.PlatformRect, order int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	objTags := []string{tags.ResolvSolid}
	if rect.Ground {
		objTags = append(objTags, tags.ResolvGround)
	}
	object := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, objTags...)
	object.Data = platform
	space.Add(object)

	components.Platform.SetValue(platform, components.PlatformData{
		Object: object,
		Order:  order,
		Ground: rect.Ground,
	})

	return platform
}
