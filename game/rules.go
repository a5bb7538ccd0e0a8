package game

import (
	"errors"
	"fmt"

	"grid-snake/game/types"
)

// Default rule values.
const (
	DefaultGridSize     = 14
	DefaultInitialSpeed = 0.3 // seconds between ticks
	DefaultSpeedDecay   = 0.99
	DefaultTargetBonus  = 100
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the tunables of a session.
type Rules struct {
	GridSize     int
	InitialSpeed float64
	SpeedDecay   float64
	TargetBonus  int

	// MinSpeed floors the tick interval. Zero leaves the decay unbounded.
	MinSpeed float64
	// TargetAvoidsBody makes target spawns skip cells covered by the snake.
	TargetAvoidsBody bool
}

func DefaultRules() Rules {
	return Rules{
		GridSize:     DefaultGridSize,
		InitialSpeed: DefaultInitialSpeed,
		SpeedDecay:   DefaultSpeedDecay,
		TargetBonus:  DefaultTargetBonus,
	}
}

func (r Rules) Validate() error {
	switch {
	case r.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidRules, r.GridSize)
	case r.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed %v must be positive", ErrInvalidRules, r.InitialSpeed)
	case r.SpeedDecay <= 0 || r.SpeedDecay > 1:
		return fmt.Errorf("%w: speed decay %v must be in (0, 1]", ErrInvalidRules, r.SpeedDecay)
	case r.TargetBonus < 0:
		return fmt.Errorf("%w: target bonus %d must not be negative", ErrInvalidRules, r.TargetBonus)
	case r.MinSpeed < 0:
		return fmt.Errorf("%w: min speed %v must not be negative", ErrInvalidRules, r.MinSpeed)
	}
	return nil
}

func (r Rules) grid() types.Grid {
	return types.Grid{Size: r.GridSize}
}
