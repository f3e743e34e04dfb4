package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="30" infinite="0">
`

func TestLoadStageMovesGroundFirst(t *testing.T) {
	fsys := fstest.MapFS{"stage.tmx": {Data: []byte(header + `
 <objectgroup id="1" name="Platforms">
  <object id="1" name="ledge" type="ledge" x="40" y="100" width="80" height="10"/>
  <object id="2" name="floor" type="ground" x="0" y="120" width="320" height="30"/>
  <object id="3" name="high" type="ledge" x="200" y="60" width="60" height="10"/>
 </objectgroup>
</map>`)}}

	stage, err := LoadStage(fsys, "stage.tmx")
	if err != nil {
		t.Fatalf("LoadStage: %v", err)
	}
	if stage.MapWidth != 320 || stage.MapHeight != 150 {
		t.Errorf("map size = %dx%d, want 320x150", stage.MapWidth, stage.MapHeight)
	}

	names := []string{}
	for _, p := range stage.Platforms {
		names = append(names, p.Name)
	}
	want := []string{"floor", "ledge", "high"}
	if len(names) != len(want) {
		t.Fatalf("platforms = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("platforms = %v, want %v", names, want)
		}
	}
	if !stage.Platforms[0].Ground {
		t.Error("first platform should be flagged ground")
	}

	// No PlayerSpawn group: middle of the ground.
	if stage.Spawn.X != 160 || stage.Spawn.Y != 120 {
		t.Errorf("spawn = %+v, want {160 120}", stage.Spawn)
	}
}

func TestLoadStageRequiresGround(t *testing.T) {
	fsys := fstest.MapFS{"stage.tmx": {Data: []byte(header + `
 <objectgroup id="1" name="Platforms">
  <object id="1" name="ledge" type="ledge" x="40" y="100" width="80" height="10"/>
 </objectgroup>
</map>`)}}

	if _, err := LoadStage(fsys, "stage.tmx"); !errors.Is(err, ErrNoGround) {
		t.Fatalf("err = %v, want ErrNoGround", err)
	}
}

func TestLoadShippedStage(t *testing.T) {
	stage, err := LoadStage(os.DirFS("../../assets"), "levels/stage.tmx")
	if err != nil {
		t.Fatalf("LoadStage: %v", err)
	}
	if len(stage.Platforms) != 4 {
		t.Fatalf("got %d platforms, want ground plus three ledges", len(stage.Platforms))
	}
	if stage.Platforms[0].Y != 490 || stage.Platforms[0].W != 960 {
		t.Errorf("ground = %+v", stage.Platforms[0])
	}
	if stage.Spawn.X != 480 || stage.Spawn.Y != 490 {
		t.Errorf("spawn = %+v", stage.Spawn)
	}
}
