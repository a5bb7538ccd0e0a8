package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"grid-snake/game/types"
)

const step = 300 * time.Millisecond

func newTestSession(t *testing.T, rng types.PositionGenerator) (*Session, *manualTime, *bytes.Buffer) {
	t.Helper()
	mock := newManualTime(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	s, err := NewSession(DefaultRules(), rng, mock, log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, mock, &buf
}

func TestSessionTicksOnlyWhenDue(t *testing.T) {
	s, mock, _ := newTestSession(t, fixed(pt(0, 13)))

	if res := s.Frame(0); res.Ticked {
		t.Fatal("ticked before the interval elapsed")
	}
	mock.Advance(step - time.Millisecond)
	if res := s.Frame(0); res.Ticked {
		t.Fatal("ticked 1ms early")
	}
	mock.Advance(time.Millisecond)
	if res := s.Frame(0); !res.Ticked {
		t.Fatal("did not tick once due")
	}
	if s.State().Head() != pt(1, 0) {
		t.Errorf("head = %v, want (1,0)", s.State().Head())
	}
	if res := s.Frame(0); res.Ticked {
		t.Error("ticked twice in the same instant")
	}
}

func TestSessionAppliesInputBetweenTicks(t *testing.T) {
	s, mock, _ := newTestSession(t, fixed(pt(0, 13)))

	s.Frame(NewInput(types.Down))
	if s.State().Direction() != pt(0, 1) || !s.State().Locked() {
		t.Fatalf("input not applied: dir=%v locked=%v", s.State().Direction(), s.State().Locked())
	}
	s.Frame(NewInput(types.Right))
	if s.State().Direction() != pt(0, 1) {
		t.Fatal("second change accepted within one tick")
	}

	mock.Advance(step)
	s.Frame(0)
	if s.State().Head() != pt(0, 1) {
		t.Errorf("head = %v, want (0,1)", s.State().Head())
	}
	s.Frame(NewInput(types.Right))
	if s.State().Direction() != pt(1, 0) {
		t.Error("change after tick rejected")
	}
}

func TestSessionUsesCurrentSpeed(t *testing.T) {
	s, mock, _ := newTestSession(t, newScripted(pt(1, 0), pt(9, 9)))

	mock.Advance(step)
	res := s.Frame(0)
	if !res.Outcome.Ate {
		t.Fatalf("expected to eat the first target, got %+v", res)
	}

	mock.Advance(296 * time.Millisecond)
	if res := s.Frame(0); res.Ticked {
		t.Fatal("ticked before the shortened interval")
	}
	mock.Advance(2 * time.Millisecond)
	if res := s.Frame(0); !res.Ticked {
		t.Error("did not tick at the faster speed")
	}
}

func TestSessionRecordsRoundAndRestarts(t *testing.T) {
	s, mock, buf := newTestSession(t, fixed(pt(0, 13)))
	firstRound := s.RoundID()

	var last FrameResult
	for i := 0; i < DefaultGridSize; i++ {
		mock.Advance(step)
		last = s.Frame(0)
	}
	if !s.State().GameOver() {
		t.Fatalf("expected game over, head at %v", s.State().Head())
	}
	if last.Outcome.Collision != types.WallCollision {
		t.Errorf("collision = %v, want wall", last.Outcome.Collision)
	}
	if s.Stats().GetGamesPlayed() != 1 {
		t.Fatalf("rounds recorded = %d, want 1", s.Stats().GetGamesPlayed())
	}
	rec, _ := s.Stats().LastRound()
	if rec.ID != firstRound || rec.Cause != types.WallCollision || rec.Duration() != DefaultGridSize*step {
		t.Errorf("unexpected round record %+v", rec)
	}
	if !strings.Contains(buf.String(), "cause=wall") {
		t.Errorf("log missing round summary: %q", buf.String())
	}

	// Frozen until restart is held.
	mock.Advance(10 * step)
	if res := s.Frame(NewInput(types.Down)); res.Ticked || res.Restarted {
		t.Fatalf("frame changed a finished round: %+v", res)
	}
	if s.Stats().GetGamesPlayed() != 1 {
		t.Fatal("round recorded twice")
	}

	res := s.Frame(NewInput().WithRestart())
	if !res.Restarted {
		t.Fatal("restart not honoured")
	}
	st := s.State()
	if st.GameOver() || st.Head() != pt(0, 0) || st.Score() != 0 {
		t.Errorf("state not reset: over=%v head=%v score=%d", st.GameOver(), st.Head(), st.Score())
	}
	if s.RoundID() == firstRound {
		t.Error("new round kept the old id")
	}

	// The clock restarts with the round.
	if res := s.Frame(0); res.Ticked {
		t.Error("ticked immediately after restart")
	}
}

func TestSessionRestartIgnoredWhileRunning(t *testing.T) {
	s, mock, _ := newTestSession(t, fixed(pt(0, 13)))
	mock.Advance(step)
	s.Frame(0)

	res := s.Frame(NewInput().WithRestart())

	if res.Restarted || s.State().Head() != pt(1, 0) {
		t.Errorf("restart applied mid-round: %+v head=%v", res, s.State().Head())
	}
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	rules := DefaultRules()
	rules.GridSize = -1
	if _, err := NewSession(rules, fixed(pt(0, 0)), nil, nil); err == nil {
		t.Error("expected error for invalid rules")
	}
}

func TestSessionCloseLogsSummary(t *testing.T) {
	s, mock, buf := newTestSession(t, fixed(pt(0, 13)))
	for i := 0; i < DefaultGridSize; i++ {
		mock.Advance(step)
		s.Frame(0)
	}
	if !s.State().GameOver() {
		t.Fatal("expected game over")
	}

	s.Close()

	for _, want := range []string{"rounds=1", "best=0", "median=0.0", "longest=4.2s"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("close log missing %q: %q", want, buf.String())
		}
	}
}
