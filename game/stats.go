package game

import (
	"sort"
	"time"

	"grid-snake/game/types"
)

// MaxRounds caps how many finished rounds GameStats keeps. The best score
// survives trimming.
const MaxRounds = 200

// RoundRecord describes one finished round, from reset to game over.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Cause     types.CollisionType
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats keeps the rounds played since the process started. Nothing is
// written to disk.
type GameStats struct {
	Rounds []RoundRecord
	played int
	best   int
}

func NewGameStats() *GameStats {
	return &GameStats{
		Rounds: make([]RoundRecord, 0),
	}
}

// AddRound appends a finished round, dropping the oldest beyond MaxRounds.
func (s *GameStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
	if len(s.Rounds) > MaxRounds {
		s.Rounds = s.Rounds[len(s.Rounds)-MaxRounds:]
	}
	s.played++
	if r.Score > s.best {
		s.best = r.Score
	}
}

// GetGamesPlayed counts every round ever added, trimmed ones included.
func (s *GameStats) GetGamesPlayed() int {
	return s.played
}

func (s *GameStats) GetMaxScore() int {
	return s.best
}

// GetAverageScore averages the rounds still in the window.
func (s *GameStats) GetAverageScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.Rounds))
}

func (s *GameStats) GetMedianScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	scores := make([]int, len(s.Rounds))
	for i, r := range s.Rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *GameStats) GetMaxDuration() time.Duration {
	var longest time.Duration
	for _, r := range s.Rounds {
		if d := r.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

func (s *GameStats) LastRound() (RoundRecord, bool) {
	if len(s.Rounds) == 0 {
		return RoundRecord{}, false
	}
	return s.Rounds[len(s.Rounds)-1], true
}
