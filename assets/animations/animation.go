package animations

import "math"

// Sprite plays a frame sequence at a fractional speed. It carries the
// transform the renderer needs and fires a one-shot completion callback
// when a non-looping sequence reaches its last frame.
type Sprite struct {
	frames     []Frame
	speed      float64 // frames advanced per tick
	cursor     float64
	loop       bool
	playing    bool
	onComplete func()

	x, y           float64
	scaleX, scaleY float64
	alpha          float64
}

func NewSprite() *Sprite {
	return &Sprite{scaleX: 1, scaleY: 1, alpha: 1}
}

func (s *Sprite) SetFrames(frames []Frame) {
	s.frames = frames
	s.cursor = 0
}

func (s *Sprite) SetSpeed(speed float64) { s.speed = speed }
func (s *Sprite) SetLoop(loop bool)      { s.loop = loop }
func (s *Sprite) Loop() bool             { return s.loop }
func (s *Sprite) Playing() bool          { return s.playing }

func (s *Sprite) SetScale(x, y float64) {
	s.scaleX, s.scaleY = x, y
}

func (s *Sprite) Scale() (float64, float64) {
	return s.scaleX, s.scaleY
}

func (s *Sprite) SetPosition(x, y float64) {
	s.x, s.y = x, y
}

func (s *Sprite) Position() (float64, float64) {
	return s.x, s.y
}

func (s *Sprite) SetAlpha(a float64) { s.alpha = a }
func (s *Sprite) Alpha() float64     { return s.alpha }

// SetOnComplete replaces the completion callback. nil clears it.
func (s *Sprite) SetOnComplete(fn func()) {
	s.onComplete = fn
}

// GotoAndPlay restarts playback at frame i.
func (s *Sprite) GotoAndPlay(i int) {
	if i < 0 || i >= len(s.frames) {
		i = 0
	}
	s.cursor = float64(i)
	s.playing = true
}

func (s *Sprite) Stop() {
	s.playing = false
}

// Update advances playback by one tick.
func (s *Sprite) Update() {
	if !s.playing || len(s.frames) == 0 {
		return
	}

	s.cursor += s.speed
	n := float64(len(s.frames))
	if s.cursor < n {
		return
	}

	if s.loop {
		s.cursor = math.Mod(s.cursor, n)
		return
	}

	s.cursor = n - 1
	s.playing = false
	if cb := s.onComplete; cb != nil {
		// Cleared first so the callback may arm a new one.
		s.onComplete = nil
		cb()
	}
}

// FrameIndex is the index of the frame currently shown.
func (s *Sprite) FrameIndex() int {
	return int(s.cursor)
}

// Frame returns the current frame and false when no frames are set.
func (s *Sprite) Frame() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	i := s.FrameIndex()
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	return s.frames[i], true
}

// Height is the rendered height of the current frame.
func (s *Sprite) Height() float64 {
	f, ok := s.Frame()
	if !ok {
		return 0
	}
	return float64(f.Rect.Dy()) * math.Abs(s.scaleY)
}

// Width is the rendered width of the current frame.
func (s *Sprite) Width() float64 {
	f, ok := s.Frame()
	if !ok {
		return 0
	}
	return float64(f.Rect.Dx()) * math.Abs(s.scaleX)
}
