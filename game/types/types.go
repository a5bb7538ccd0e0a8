package types

// Point is a cell on the grid. Values outside the grid only exist for the
// head of a snake that has just moved off the board.
type Point struct {
	X, Y int
}

// Add returns p moved by the vector v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid is the square playing field.
type Grid struct {
	Size int
}

// Contains reports whether p lies inside [0, Size) on both axes.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Size && p.Y < g.Size
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Direction is one of the four cardinal headings.
type Direction int

// Declaration order is the input priority: when several keys are held the
// first one in this list that can be accepted wins.
const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every heading in input priority order.
var Directions = [...]Direction{Right, Left, Up, Down}

// Vector converts a Direction into a unit step.
func (d Direction) Vector() Point {
	switch d {
	case Right:
		return Point{X: 1, Y: 0}
	case Left:
		return Point{X: -1, Y: 0}
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// PositionGenerator produces target cells for a grid of the given size.
type PositionGenerator interface {
	Position(size int) Point
}

// PositionFunc adapts a plain function to PositionGenerator.
type PositionFunc func(size int) Point

func (f PositionFunc) Position(size int) Point {
	return f(size)
}
