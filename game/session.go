package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"grid-snake/game/types"
)

// FrameResult reports what a single Frame call did.
type FrameResult struct {
	Ticked    bool
	Restarted bool
	Outcome   TickOutcome
}

// Session drives a State from a host frame loop: input first, then a tick
// when the clock says one is due, or a reset when the round is over and the
// restart key is held.
type Session struct {
	UUID  string
	state *State
	clock *Clock
	rng   types.PositionGenerator
	stats *GameStats
	round RoundRecord
	log   *log.Logger
}

// NewSession builds a running session. A nil logger discards output and a
// nil provider uses the wall clock.
func NewSession(rules Rules, rng types.PositionGenerator, provider TimeProvider, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	state, err := NewState(rules, rng)
	if err != nil {
		return nil, err
	}

	s := &Session{
		UUID:  uuid.New().String(),
		state: state,
		clock: NewClock(provider),
		rng:   rng,
		stats: NewGameStats(),
		log:   logger,
	}
	s.beginRound()
	s.log.Printf("[GAME] [INFO] session %s started: grid=%d speed=%.3fs", s.UUID, rules.GridSize, rules.InitialSpeed)
	return s, nil
}

// Frame runs one host frame.
func (s *Session) Frame(in Input) FrameResult {
	var res FrameResult

	if !s.state.GameOver() {
		s.state.ApplyInput(in)
		if s.clock.Due(s.state.Speed()) {
			s.clock.Mark()
			res.Ticked = true
			res.Outcome = s.state.Tick(s.rng)
			if res.Outcome.Ate {
				s.log.Printf("[GAME] [DEBUG] target eaten: score=%d speed=%.4fs", s.state.Score(), s.state.Speed())
			}
			if s.state.GameOver() {
				s.endRound(res.Outcome.Collision)
			}
		}
		return res
	}

	if in.Restart() {
		s.state.Reset(s.rng)
		s.clock.Mark()
		s.beginRound()
		res.Restarted = true
	}
	return res
}

func (s *Session) beginRound() {
	s.round = RoundRecord{
		ID:        uuid.New().String(),
		StartTime: s.clock.Now(),
	}
}

func (s *Session) endRound(cause types.CollisionType) {
	s.round.EndTime = s.clock.Now()
	s.round.Score = s.state.Score()
	s.round.Length = s.state.Len()
	s.round.Cause = cause
	s.stats.AddRound(s.round)
	s.log.Printf("[GAME] [INFO] round %s over: cause=%s score=%d length=%d duration=%s",
		s.round.ID, cause, s.round.Score, s.round.Length, s.round.Duration().Round(time.Millisecond))
}

// Close logs a summary of the rounds played.
func (s *Session) Close() {
	s.log.Printf("[GAME] [INFO] session %s closed: rounds=%d best=%d average=%.1f median=%.1f longest=%s",
		s.UUID, s.stats.GetGamesPlayed(), s.stats.GetMaxScore(), s.stats.GetAverageScore(),
		s.stats.GetMedianScore(), s.stats.GetMaxDuration().Round(time.Millisecond))
}

func (s *Session) State() *State {
	return s.state
}

func (s *Session) Stats() *GameStats {
	return s.stats
}

// RoundID identifies the round in progress, or the one that just ended.
func (s *Session) RoundID() string {
	return s.round.ID
}
