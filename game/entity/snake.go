package entity

import (
	"grid-snake/game/types"
)

// Snake is the player's body. Head is kept apart from Body so the per-tick
// comparisons against the target and the segments stay cheap.
//
// Body is stored tail first: the newest segment sits at the end of the
// slice, so growing is an append and dropping the tail is a reslice.
type Snake struct {
	Head      types.Point
	Body      []types.Point
	Direction types.Point
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:      startPos,
		Body:      make([]types.Point, 0, 16),
		Direction: dir.Vector(),
	}
}

// Move pushes the current head onto the body and steps the head along the
// current direction. The tail is left in place; callers drop it with
// RemoveTail unless the snake is growing.
func (s *Snake) Move() types.Point {
	s.Body = append(s.Body, s.Head)
	s.Head = s.Head.Add(s.Direction)
	return s.Head
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Head
}

// SetDirection changes the heading unless dir is the exact reverse of the
// current one. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Point) bool {
	if dir == (types.Point{}) {
		return false
	}
	if dir.X == -s.Direction.X && dir.Y == -s.Direction.Y {
		return false
	}
	s.Direction = dir
	return true
}

// BodyContains reports whether p matches any body segment (head excluded).
func (s *Snake) BodyContains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p is covered by the head or any body segment.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.BodyContains(p)
}

// Segments returns a copy of the body, newest segment first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	for i, p := range s.Body {
		out[len(s.Body)-1-i] = p
	}
	return out
}

// Len is the number of body segments, not counting the head.
func (s *Snake) Len() int {
	return len(s.Body)
}
