package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sqlskills/internal/mastery"
)

// ErrSessionActive is returned when starting a session while one is open.
var ErrSessionActive = errors.New("session already active")

// Phase is the lifecycle phase of a learner's session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// State is the Idle/Active state machine for one learner. While Active it
// holds the baseline captured at Start plus running answer counters.
// The zero value is Idle.
type State struct {
	phase        Phase
	id           string
	startedAt    time.Time
	baseline     *mastery.Snapshot
	beforeBadges []string
	questions    int
	correct      int
	deltas       map[string]float64
}

// Start moves Idle to Active, capturing a copy of the current snapshot
// and earned badges as the baseline. It returns ErrSessionActive and
// leaves the existing baseline untouched if a session is already open.
func (s *State) Start(current *mastery.Snapshot, earned []string, now time.Time) error {
	if s.phase == PhaseActive {
		return ErrSessionActive
	}
	*s = State{
		phase:        PhaseActive,
		id:           uuid.NewString(),
		startedAt:    now,
		baseline:     current.Clone(),
		beforeBadges: append([]string(nil), earned...),
		deltas:       make(map[string]float64),
	}
	return nil
}

// Active reports whether a session is open.
func (s *State) Active() bool {
	return s.phase == PhaseActive
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// ID returns the open session's ID, or "" when Idle.
func (s *State) ID() string {
	return s.id
}

// StartedAt returns when the open session began.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}

// Observe counts one answered question and accumulates its per-skill
// deltas. It is a no-op while Idle.
func (s *State) Observe(correct bool, deltas map[string]float64) {
	if s.phase != PhaseActive {
		return
	}
	s.questions++
	if correct {
		s.correct++
	}
	for id, d := range deltas {
		s.deltas[id] += d
	}
}

// Deltas returns the accumulated per-skill score change of the open
// session.
func (s *State) Deltas() map[string]float64 {
	out := make(map[string]float64, len(s.deltas))
	for id, d := range s.deltas {
		out[id] = d
	}
	return out
}

// Questions returns the answered and correct counts so far.
func (s *State) Questions() (attempted, correct int) {
	return s.questions, s.correct
}

// Finish builds the summary against current and returns to Idle. It
// returns false while Idle.
func (s *State) Finish(in Input, current *mastery.Snapshot, now time.Time) (*Summary, bool) {
	if s.phase != PhaseActive {
		return nil, false
	}
	in.SessionID = s.id
	in.Before = s.baseline
	in.After = current
	in.BeforeBadges = s.beforeBadges
	in.QuestionsAttempted = s.questions
	in.CorrectCount = s.correct
	in.StartedAt = s.startedAt
	in.EndedAt = now
	sum := BuildSummary(in)
	s.Reset()
	return sum, true
}

// Reset drops any open session without summarizing it.
func (s *State) Reset() {
	*s = State{}
}
