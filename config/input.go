package config

import "strings"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveRight
	ActionMoveLeft
	ActionIdle
	ActionJump
	ActionAttack
	ActionSpecial
	ActionRetry
	ActionMute
	ActionFullscreen
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all input mappings. Keys are lowercase names as
// produced by the keyboard source ("arrowright", "d", "2", "enter").
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionMoveRight:  {"arrowright", "d", "2"},
			ActionMoveLeft:   {"arrowleft", "a"},
			ActionIdle:       {"1"},
			ActionJump:       {"w", "3"},
			ActionAttack:     {"l", "4"},
			ActionSpecial:    {"k"},
			ActionRetry:      {"enter", "r"},
			ActionMute:       {"m"},
			ActionFullscreen: {"f11"},
			ActionDebug:      {"f3"},
		},
	}
}

// NormalizeKey lowercases a key name so bindings match case-insensitively.
func NormalizeKey(key string) string {
	return strings.ToLower(key)
}

// Matches reports whether key is bound to action.
func (c InputConfig) Matches(action ActionID, key string) bool {
	key = NormalizeKey(key)
	for _, k := range c.Bindings[action] {
		if k == key {
			return true
		}
	}
	return false
}

// ActionFor returns the first gameplay action bound to key, checked in
// ActionID order, or ActionNone.
func (c InputConfig) ActionFor(key string) ActionID {
	for a := ActionNone + 1; a < ActionCount; a++ {
		if c.Matches(a, key) {
			return a
		}
	}
	return ActionNone
}

// MovementKeys returns every key bound to a horizontal movement action.
func (c InputConfig) MovementKeys() []string {
	keys := make([]string, 0, len(c.Bindings[ActionMoveRight])+len(c.Bindings[ActionMoveLeft]))
	keys = append(keys, c.Bindings[ActionMoveRight]...)
	return append(keys, c.Bindings[ActionMoveLeft]...)
}
