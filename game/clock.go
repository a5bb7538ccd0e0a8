package game

import "time"

// TimeProvider is the source of "now" for the game clock.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the wall clock with its monotonic reading.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// ElapsedSince reports whether at least speed seconds separate last and now.
func ElapsedSince(last, now time.Time, speed float64) bool {
	return now.Sub(last).Seconds() >= speed
}

// Clock remembers when the last tick happened and answers whether the next
// one is due. It holds no game state.
type Clock struct {
	provider TimeProvider
	lastTick time.Time
}

func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = SystemTime{}
	}
	return &Clock{
		provider: provider,
		lastTick: provider.Now(),
	}
}

func (c *Clock) Now() time.Time {
	return c.provider.Now()
}

// Due reports whether a tick should run given the current speed.
func (c *Clock) Due(speed float64) bool {
	return ElapsedSince(c.lastTick, c.provider.Now(), speed)
}

// Mark records now as the time of the last tick.
func (c *Clock) Mark() {
	c.lastTick = c.provider.Now()
}
