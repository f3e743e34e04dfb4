package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

const (
	platformsGroup = "Platforms"
	spawnGroup     = "PlayerSpawn"
	groundType     = "ground"
)

var ErrNoGround = errors.New("stage has no ground platform")

// LoadStage parses a TMX file. Platforms come from the "Platforms" object
// group; the object typed or named "ground" is moved to the front so it is tested
// first. The spawn point defaults to the middle of the ground when the
// "PlayerSpawn" group is empty. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*StageData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &StageData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	groundIndex := -1
	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case platformsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: platform %q has no size", tmxPath, o.Name)
				}
				p := PlatformRect{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Ground: o.Type == groundType || o.Name == groundType,
				}
				if p.Ground && groundIndex < 0 {
					groundIndex = len(data.Platforms)
				}
				data.Platforms = append(data.Platforms, p)
			}
		case spawnGroup:
			if len(og.Objects) > 0 && !spawnFound {
				data.Spawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		}
	}

	if groundIndex < 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoGround)
	}
	if groundIndex > 0 {
		ground := data.Platforms[groundIndex]
		copy(data.Platforms[1:groundIndex+1], data.Platforms[:groundIndex])
		data.Platforms[0] = ground
	}

	if !spawnFound {
		g := data.Platforms[0]
		data.Spawn = SpawnPoint{X: g.X + g.W/2, Y: g.Y}
	}

	return data, nil
}
