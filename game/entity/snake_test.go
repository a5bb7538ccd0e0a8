package entity

import (
	"testing"

	"grid-snake/game/types"
)

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2}, types.Right)

	head := s.Move()
	if head != (types.Point{X: 3, Y: 2}) {
		t.Fatalf("head = %v, want (3,2)", head)
	}
	if s.Len() != 1 || s.Body[0] != (types.Point{X: 2, Y: 2}) {
		t.Fatalf("body = %v, want [(2,2)]", s.Body)
	}

	s.Move()
	segs := s.Segments()
	if segs[0] != (types.Point{X: 3, Y: 2}) || segs[1] != (types.Point{X: 2, Y: 2}) {
		t.Errorf("segments = %v, want newest first", segs)
	}

	s.RemoveTail()
	if s.Len() != 1 || s.Body[0] != (types.Point{X: 3, Y: 2}) {
		t.Errorf("body after RemoveTail = %v, want [(3,2)]", s.Body)
	}

	s.RemoveTail()
	s.RemoveTail()
	if s.Len() != 0 {
		t.Errorf("RemoveTail on empty body left %d segments", s.Len())
	}
}

func TestSetDirection(t *testing.T) {
	s := NewSnake(types.Point{}, types.Right)

	if s.SetDirection(types.Left.Vector()) {
		t.Error("reverse accepted")
	}
	if s.SetDirection(types.Point{}) {
		t.Error("zero vector accepted")
	}
	if !s.SetDirection(types.Up.Vector()) || s.Direction != types.Up.Vector() {
		t.Error("perpendicular turn rejected")
	}
	if !s.SetDirection(types.Up.Vector()) {
		t.Error("same heading rejected")
	}
	if s.SetDirection(types.Down.Vector()) {
		t.Error("reverse of new heading accepted")
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.Right)
	s.Move()

	if !s.Occupies(types.Point{X: 2, Y: 1}) || !s.Occupies(types.Point{X: 1, Y: 1}) {
		t.Error("expected head and body cells to be occupied")
	}
	if s.BodyContains(types.Point{X: 2, Y: 1}) {
		t.Error("BodyContains matched the head")
	}
	if s.Occupies(types.Point{X: 5, Y: 5}) {
		t.Error("free cell reported occupied")
	}
}
