package game

import (
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// TickOutcome describes what happened during one Tick.
type TickOutcome struct {
	Ate       bool
	Collision types.CollisionType
}

// State is the whole game: the snake, the target, score, speed and the
// terminal flag. It is not safe for concurrent use; a single host loop owns it.
type State struct {
	rules        Rules
	grid         types.Grid
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	targetMgr    *manager.TargetManager

	target         types.Point
	score          int
	speed          float64
	navigationLock bool
	gameOver       bool
}

// NewState validates rules and returns a freshly reset state.
func NewState(rules Rules, rng types.PositionGenerator) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	grid := rules.grid()
	collisionMgr := manager.NewCollisionManager(grid)
	s := &State{
		rules:        rules,
		grid:         grid,
		collisionMgr: collisionMgr,
		targetMgr:    manager.NewTargetManager(grid, rules.TargetAvoidsBody, collisionMgr),
	}
	s.Reset(rng)
	return s, nil
}

// Reset puts every field back to its starting value and draws a new target.
func (s *State) Reset(rng types.PositionGenerator) {
	s.snake = entity.NewSnake(types.Point{X: 0, Y: 0}, types.Right)
	s.score = 0
	s.speed = s.rules.InitialSpeed
	s.navigationLock = false
	s.gameOver = false
	s.target = s.targetMgr.GenerateTarget(rng, s.snake)
}

// ApplyInput accepts at most one direction change per tick. Held keys are
// tried in Right, Left, Up, Down order and the first one that is not a
// reversal of the current heading wins.
func (s *State) ApplyInput(in Input) {
	if s.gameOver || s.navigationLock {
		return
	}
	for _, d := range types.Directions {
		if !in.Held(d) {
			continue
		}
		if s.snake.SetDirection(d.Vector()) {
			s.navigationLock = true
			return
		}
	}
}

// Tick advances the snake one cell, resolves the target and the collision
// checks, and releases the navigation lock.
func (s *State) Tick(rng types.PositionGenerator) TickOutcome {
	var outcome TickOutcome
	if s.gameOver {
		return outcome
	}

	head := s.snake.Move()

	if head == s.target {
		s.target = s.targetMgr.GenerateTarget(rng, s.snake)
		s.score += s.rules.TargetBonus
		s.speed *= s.rules.SpeedDecay
		if s.rules.MinSpeed > 0 && s.speed < s.rules.MinSpeed {
			s.speed = s.rules.MinSpeed
		}
		outcome.Ate = true
	} else {
		s.snake.RemoveTail()
	}

	if collision := s.collisionMgr.CheckCollision(s.snake); collision != types.NoCollision {
		s.gameOver = true
		outcome.Collision = collision
	}

	s.navigationLock = false
	return outcome
}

func (s *State) Head() types.Point {
	return s.snake.GetHead()
}

// Body returns the body segments, newest first.
func (s *State) Body() []types.Point {
	return s.snake.Segments()
}

func (s *State) Len() int {
	return s.snake.Len()
}

func (s *State) Direction() types.Point {
	return s.snake.Direction
}

func (s *State) Target() types.Point {
	return s.target
}

func (s *State) Score() int {
	return s.score
}

// Speed is the minimum number of seconds between two ticks.
func (s *State) Speed() float64 {
	return s.speed
}

func (s *State) Locked() bool {
	return s.navigationLock
}

func (s *State) GameOver() bool {
	return s.gameOver
}

func (s *State) Grid() types.Grid {
	return s.grid
}
