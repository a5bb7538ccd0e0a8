package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"grid-snake/game"
	"grid-snake/game/types"
)

// DefaultHoldWindow is how long a key press counts as held. Terminals only
// report presses (plus auto-repeat), never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyState turns tcell key events into held-key Input. Only the most recent
// direction counts as held.
type KeyState struct {
	hold        time.Duration
	direction   types.Direction
	directionAt time.Time
	hasDir      bool
	restartAt   time.Time
	hasRestart  bool
}

func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{hold: hold}
}

// Handle records ev at time now and reports whether it asks to quit.
func (k *KeyState) Handle(ev *tcell.EventKey, now time.Time) bool {
	return k.handle(ev.Key(), ev.Rune(), now)
}

func (k *KeyState) handle(key tcell.Key, ch rune, now time.Time) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		k.restartAt, k.hasRestart = now, true
		return false
	case tcell.KeyRight:
		k.press(types.Right, now)
		return false
	case tcell.KeyLeft:
		k.press(types.Left, now)
		return false
	case tcell.KeyUp:
		k.press(types.Up, now)
		return false
	case tcell.KeyDown:
		k.press(types.Down, now)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ch {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		k.restartAt, k.hasRestart = now, true
	case 'd', 'D', 'l':
		k.press(types.Right, now)
	case 'a', 'A', 'h':
		k.press(types.Left, now)
	case 'w', 'W', 'k':
		k.press(types.Up, now)
	case 's', 'S', 'j':
		k.press(types.Down, now)
	}
	return false
}

func (k *KeyState) press(d types.Direction, now time.Time) {
	k.direction, k.directionAt, k.hasDir = d, now, true
}

// Input returns the keys considered held at now.
func (k *KeyState) Input(now time.Time) game.Input {
	var in game.Input
	if k.hasDir && now.Sub(k.directionAt) < k.hold {
		in = in.Press(k.direction)
	}
	if k.hasRestart && now.Sub(k.restartAt) < k.hold {
		in = in.WithRestart()
	}
	return in
}
