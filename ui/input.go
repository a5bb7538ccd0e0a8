package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game"
	"grid-snake/game/types"
)

var directionKeys = map[types.Direction]int32{
	types.Right: rl.KeyRight,
	types.Left:  rl.KeyLeft,
	types.Up:    rl.KeyUp,
	types.Down:  rl.KeyDown,
}

const restartKey = rl.KeyEnter

// ReadInput samples the keys currently held down.
func ReadInput() game.Input {
	var in game.Input
	for _, d := range types.Directions {
		if rl.IsKeyDown(directionKeys[d]) {
			in = in.Press(d)
		}
	}
	if rl.IsKeyDown(restartKey) {
		in = in.WithRestart()
	}
	return in
}
