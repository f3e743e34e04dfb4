package systems

import (
	"github.com/automoto/heartfall/components"
	cfg "github.com/automoto/heartfall/config"
	"github.com/yohamta/donburi"
)

// SubscribeInput attaches the key handler to the world's input stream.
func SubscribeInput(w donburi.World) {
	components.KeyEvents.Subscribe(w, handleKeyEvent)
}

// UnsubscribeInput detaches the key handler. Events published afterwards
// are dropped.
func UnsubscribeInput(w donburi.World) {
	components.KeyEvents.Unsubscribe(w, handleKeyEvent)
}

// ProcessInput delivers the key events queued since the last tick.
func ProcessInput(w donburi.World) {
	components.KeyEvents.ProcessEvents(w)
}

func handleKeyEvent(w donburi.World, ev components.KeyEvent) {
	HandleKey(w, ev)
}

// HandleKey applies one key transition. Global toggles always work, retry
// only on the game over screen, and character keys only while playing and
// not dying.
func HandleKey(w donburi.World, ev components.KeyEvent) {
	key := cfg.NormalizeKey(ev.Key)

	if ev.Down {
		switch cfg.Input.ActionFor(key) {
		case cfg.ActionMute:
			ToggleMute(w)
			return
		case cfg.ActionFullscreen:
			ToggleFullscreen(w)
			return
		case cfg.ActionDebug:
			ToggleDebug(w)
			return
		case cfg.ActionRetry:
			if Phase(w) == components.PhaseGameOver {
				Retry(w)
				return
			}
		}
	}

	e, ok := characterEntry(w)
	if !ok {
		return
	}
	if ev.Down {
		if components.Death.Get(e).InputLocked() || frozen(w) {
			return
		}
		keyDown(w, e, key)
		return
	}
	keyUp(e, key)
}

func keyDown(w donburi.World, e *donburi.Entry, key string) {
	c := components.Character.Get(e)
	anim := components.Animation.Get(e)
	now := Now(w)
	id := e.Entity()

	switch {
	case cfg.Input.Matches(cfg.ActionJump, key):
		if !c.Jump(now) {
			return
		}
		anim.Play(cfg.ClipJump, false, func() { settle(w, id) })
		QueueSFX(w, cfg.SoundJump)
		return
	case cfg.Input.Matches(cfg.ActionAttack, key):
		if !c.Attack(now) {
			return
		}
		clip := cfg.ClipAttack
		if c.IsMoving() {
			clip = cfg.ClipRunningAttack
		}
		anim.Play(clip, false, func() { settle(w, id) })
		return
	}

	if !c.AddKey(key) {
		return
	}

	switch {
	case cfg.Input.Matches(cfg.ActionIdle, key):
		anim.Play(cfg.ClipIdle, true, nil)
	case cfg.Input.Matches(cfg.ActionMoveRight, key):
		anim.Play(cfg.ClipRun, true, nil)
		anim.SetDirection(true)
	case cfg.Input.Matches(cfg.ActionMoveLeft, key):
		anim.Play(cfg.ClipRun, true, nil)
		anim.SetDirection(false)
	case cfg.Input.Matches(cfg.ActionSpecial, key):
		if c.IsMoving() {
			return
		}
		anim.Play(cfg.ClipBlowup, false, func() { playIdle(w, id) })
	}
}

// idleKeepers are clips that must finish on their own and are not cut
// short by releasing the last movement key.
var idleKeepers = map[string]bool{
	cfg.ClipIdle:          true,
	cfg.ClipBlowup:        true,
	cfg.ClipJump:          true,
	cfg.ClipAttack:        true,
	cfg.ClipRunningAttack: true,
}

func keyUp(e *donburi.Entry, key string) {
	c := components.Character.Get(e)
	if !c.RemoveKey(key) {
		return
	}
	anim := components.Animation.Get(e)
	if !c.IsMoving() && !idleKeepers[anim.Current] {
		anim.Play(cfg.ClipIdle, true, nil)
	}
}

// settle returns to run or idle after a one-shot, depending on whether a
// movement key is still held.
func settle(w donburi.World, id donburi.Entity) {
	if !w.Valid(id) {
		return
	}
	e := w.Entry(id)
	if components.Death.Get(e).Active {
		return
	}
	anim := components.Animation.Get(e)
	if components.Character.Get(e).IsMoving() {
		anim.Play(cfg.ClipRun, true, nil)
		return
	}
	anim.Play(cfg.ClipIdle, true, nil)
}

func playIdle(w donburi.World, id donburi.Entity) {
	if !w.Valid(id) {
		return
	}
	e := w.Entry(id)
	if components.Death.Get(e).Active {
		return
	}
	components.Animation.Get(e).Play(cfg.ClipIdle, true, nil)
}
