package components

import "github.com/yohamta/donburi/features/events"

// KeyEvent is one key transition from the keyboard source. Key is the
// lowercase key name.
type KeyEvent struct {
	Key  string
	Down bool
}

// KeyEvents is the input stream the scene publishes into.
var KeyEvents = events.NewEventType[KeyEvent]()
