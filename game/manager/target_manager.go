package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// MaxSpawnTries bounds the rejection sampling done when targets must avoid
// the snake before falling back to a board scan.
const MaxSpawnTries = 64

type TargetManager struct {
	grid         types.Grid
	avoidBody    bool
	collisionMgr *CollisionManager
}

func NewTargetManager(grid types.Grid, avoidBody bool, collisionMgr *CollisionManager) *TargetManager {
	return &TargetManager{
		grid:         grid,
		avoidBody:    avoidBody,
		collisionMgr: collisionMgr,
	}
}

// GenerateTarget draws the next target cell from rng. Without body
// avoidance the first sample is used as is, so a target can land under the
// snake.
func (tm *TargetManager) GenerateTarget(rng types.PositionGenerator, snake *entity.Snake) types.Point {
	target := rng.Position(tm.grid.Size)
	if !tm.avoidBody {
		return target
	}

	for i := 0; i < MaxSpawnTries; i++ {
		if tm.collisionMgr.ValidateSpawnPosition(target, snake) {
			return target
		}
		target = rng.Position(tm.grid.Size)
	}

	// Crowded board: take the first free cell, scanning from the last sample.
	if free, ok := tm.firstFreeCell(target, snake); ok {
		return free
	}
	return target
}

func (tm *TargetManager) firstFreeCell(from types.Point, snake *entity.Snake) (types.Point, bool) {
	cells := tm.grid.Cells()
	if cells == 0 {
		return types.Point{}, false
	}
	start := 0
	if tm.grid.Contains(from) {
		start = from.Y*tm.grid.Size + from.X
	}
	for i := 0; i < cells; i++ {
		idx := (start + i) % cells
		p := types.Point{X: idx % tm.grid.Size, Y: idx / tm.grid.Size}
		if tm.collisionMgr.ValidateSpawnPosition(p, snake) {
			return p, true
		}
	}
	return types.Point{}, false
}
