package game

import "grid-snake/game/types"

// Input is the set of keys held during one frame.
type Input uint8

const restartBit Input = 1 << 7

func directionBit(d types.Direction) Input {
	return 1 << uint(d)
}

// NewInput returns an Input with the given directions held.
func NewInput(held ...types.Direction) Input {
	var in Input
	for _, d := range held {
		in = in.Press(d)
	}
	return in
}

func (in Input) Press(d types.Direction) Input {
	return in | directionBit(d)
}

func (in Input) Held(d types.Direction) bool {
	return in&directionBit(d) != 0
}

func (in Input) WithRestart() Input {
	return in | restartBit
}

func (in Input) Restart() bool {
	return in&restartBit != 0
}
