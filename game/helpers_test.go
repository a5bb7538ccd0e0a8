package game

import (
	"grid-snake/game/types"
)

// scriptedPositions hands out the given points in order, repeating the last.
type scriptedPositions struct {
	points []types.Point
	calls  int
}

func newScripted(points ...types.Point) *scriptedPositions {
	return &scriptedPositions{points: points}
}

func (s *scriptedPositions) Position(size int) types.Point {
	i := s.calls
	if i >= len(s.points) {
		i = len(s.points) - 1
	}
	s.calls++
	return s.points[i]
}

func fixed(p types.Point) types.PositionGenerator {
	return types.PositionFunc(func(int) types.Point { return p })
}

// place overwrites the snake. body is given newest segment first.
func place(s *State, head types.Point, dir types.Direction, body ...types.Point) {
	s.snake.Head = head
	s.snake.Direction = dir.Vector()
	s.snake.Body = s.snake.Body[:0]
	for i := len(body) - 1; i >= 0; i-- {
		s.snake.Body = append(s.snake.Body, body[i])
	}
}

func pt(x, y int) types.Point {
	return types.Point{X: x, Y: y}
}
