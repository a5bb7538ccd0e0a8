package game

import (
	"time"

	"golang.org/x/exp/rand"

	"grid-snake/game/types"
)

// RandomPositions draws uniformly distributed cells.
type RandomPositions struct {
	rng *rand.Rand
}

// NewRandomPositions seeds a generator. A zero seed uses the current time.
func NewRandomPositions(seed uint64) *RandomPositions {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomPositions{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomPositions) Position(size int) types.Point {
	return types.Point{
		X: r.rng.Intn(size),
		Y: r.rng.Intn(size),
	}
}
