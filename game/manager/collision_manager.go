package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks the snake's current head against the walls and its
// own body. Both checks always run; a wall hit is reported ahead of a self
// hit when a single step somehow triggers both.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	head := snake.GetHead()
	wall := cm.isWallCollision(head)
	self := cm.isSelfCollision(head, snake)

	switch {
	case wall:
		return types.WallCollision
	case self:
		return types.SelfCollision
	default:
		return types.NoCollision
	}
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the head against every body segment. The previous
// head position is already part of the body when this runs.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.BodyContains(pos)
}

// ValidateSpawnPosition checks if a position is free for a new target
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
