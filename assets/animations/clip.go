package animations

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sort"

	"github.com/automoto/heartfall/config"
	"github.com/rs/zerolog/log"
)

var ErrClipNotFound = errors.New("animation clip not found")

// Frame is one region of a sprite sheet.
type Frame struct {
	Sheet string
	Rect  image.Rectangle
}

// Clip is an immutable named frame sequence.
type Clip struct {
	Name   string
	Frames []Frame
	Speed  float64
	Loop   bool
	Scale  float64 // 0 means use the character default
}

// Set holds loaded clips by name.
type Set struct {
	clips map[string]*Clip
}

// Get returns the clip registered under name.
func (s *Set) Get(name string) (*Clip, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.clips[name]
	return c, ok
}

// Lookup is Get with an ErrClipNotFound error for unknown names.
func (s *Set) Lookup(name string) (*Clip, error) {
	c, ok := s.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrClipNotFound, name)
	}
	return c, nil
}

// Names returns clip names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.clips))
	for n := range s.clips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *Set) Len() int {
	return len(s.clips)
}

// SheetSource reports the pixel size of a sheet without decoding it fully.
type SheetSource interface {
	SheetSize(path string) (image.Point, error)
}

// FSSource reads sheet headers from a file system.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) SheetSize(path string) (image.Point, error) {
	f, err := s.FS.Open(path)
	if err != nil {
		return image.Point{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Point{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

// LoadAnimations slices every definition against its sheet. A clip that
// fails to load is logged and left out; the others still load. The returned
// error joins the individual failures and is nil when every clip loaded.
func LoadAnimations(src SheetSource, defs []config.ClipDef) (*Set, error) {
	set := &Set{clips: make(map[string]*Clip, len(defs))}
	sizes := map[string]image.Point{}

	var errs []error
	for _, def := range defs {
		clip, err := loadClip(src, sizes, def)
		if err != nil {
			log.Error().Err(err).Str("clip", def.Name).Str("sheet", def.Sheet).Msg("skipping animation clip")
			errs = append(errs, fmt.Errorf("clip %q: %w", def.Name, err))
			continue
		}
		set.clips[def.Name] = clip
	}

	return set, errors.Join(errs...)
}

func loadClip(src SheetSource, sizes map[string]image.Point, def config.ClipDef) (*Clip, error) {
	if def.FrameCount <= 0 {
		return nil, fmt.Errorf("no frames declared")
	}
	if def.FrameWidth <= 0 || def.FrameHeight <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", def.FrameWidth, def.FrameHeight)
	}

	size, ok := sizes[def.Sheet]
	if !ok {
		var err error
		size, err = src.SheetSize(def.Sheet)
		if err != nil {
			return nil, err
		}
		sizes[def.Sheet] = size
	}
	bounds := image.Rectangle{Max: size}

	frames := make([]Frame, def.FrameCount)
	for i := range frames {
		x := (def.StartColumn + i) * def.FrameWidth
		y := def.Row * def.FrameHeight
		r := image.Rect(x, y, x+def.FrameWidth, y+def.FrameHeight)
		if !r.In(bounds) {
			return nil, fmt.Errorf("frame %d at %v outside sheet %v", i, r, bounds)
		}
		frames[i] = Frame{Sheet: def.Sheet, Rect: r}
	}

	return &Clip{
		Name:   def.Name,
		Frames: frames,
		Speed:  def.Speed,
		Loop:   def.Loop,
		Scale:  def.Scale,
	}, nil
}
