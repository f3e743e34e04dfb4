package assets

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/automoto/heartfall/assets/animations"
	"github.com/automoto/heartfall/config"
	"github.com/automoto/heartfall/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Sheets returns the sheet source used to slice animation clips.
func Sheets() animations.SheetSource {
	return animations.FSSource{FS: imageFS}
}

// LoadStage parses the configured stage file.
func LoadStage() (*leveldata.StageData, error) {
	return leveldata.LoadStage(levelFS, config.Stage.LevelPath)
}

// ImageLoader decodes embedded images once and hands out cached frame
// sub-images.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[animations.Frame]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[animations.Frame]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(err)
	}
	return img
}

func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Frame returns the cached sub-image for an animation frame.
func (l *ImageLoader) Frame(f animations.Frame) *ebiten.Image {
	if img, ok := l.frameCache[f]; ok {
		return img
	}
	sheet := l.MustLoadImage(f.Sheet)
	img := sheet.SubImage(f.Rect).(*ebiten.Image)
	l.frameCache[f] = img
	return img
}

// PreloadAll decodes every sheet a clip set references, so the first draw
// does not stall.
func (l *ImageLoader) PreloadAll(set *animations.Set) {
	for _, name := range set.Names() {
		clip, _ := set.Get(name)
		for _, f := range clip.Frames {
			l.Frame(f)
		}
	}
	for _, path := range config.ObjectImages {
		l.MustLoadImage(path)
	}
}

// Loader is the process-wide image cache. It is only touched from the game
// goroutine.
var Loader = NewImageLoader()
