package mastery

import (
	"time"

	"github.com/abhisek/sqlskills/internal/skillgraph"
)

// Snapshot maps every skill in a catalog to its progress. It is total:
// once built, every catalog skill has an entry and no other keys exist.
//
// A Snapshot is not safe for concurrent use; callers serialize updates
// per learner.
type Snapshot struct {
	ids      []string
	progress map[string]SkillProgress
}

// NewSnapshot returns a snapshot with every skill in g Unattempted.
func NewSnapshot(g *skillgraph.Graph) *Snapshot {
	ids := g.IDs()
	s := &Snapshot{
		ids:      ids,
		progress: make(map[string]SkillProgress, len(ids)),
	}
	for _, id := range ids {
		s.progress[id] = newSkillProgress(id)
	}
	return s
}

// Restore builds a total snapshot for g from previously saved entries.
// Entries for skills not in g are dropped and their IDs returned; skills
// without an entry start Unattempted. Scores are re-clamped, negative
// counters are zeroed, and attempts are raised to 1 for scored skills.
func Restore(g *skillgraph.Graph, entries []SkillProgress) (*Snapshot, []string) {
	s := NewSnapshot(g)
	var dropped []string
	for _, e := range entries {
		if _, ok := s.progress[e.SkillID]; !ok {
			dropped = append(dropped, e.SkillID)
			continue
		}
		e = e.clone()
		if v, ok := e.Score.Value(); ok {
			e.Score = Scored(v)
			if e.Attempts < 1 {
				e.Attempts = 1
			}
		} else {
			e.Attempts = max(e.Attempts, 0)
		}
		if e.DecayedWeeks < 0 || e.LastPracticedAt == nil {
			e.DecayedWeeks = 0
		}
		s.progress[e.SkillID] = e
	}
	return s, dropped
}

// Get returns the progress for a skill.
func (s *Snapshot) Get(skillID string) (SkillProgress, bool) {
	p, ok := s.progress[skillID]
	if !ok {
		return SkillProgress{}, false
	}
	return p.clone(), true
}

// ScoreOf implements skillgraph.ScoreSource.
func (s *Snapshot) ScoreOf(skillID string) (float64, bool) {
	p, ok := s.progress[skillID]
	if !ok {
		return 0, false
	}
	return p.Score.Value()
}

// IDs returns the skill IDs in catalog order.
func (s *Snapshot) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Entries returns every skill's progress in catalog order.
func (s *Snapshot) Entries() []SkillProgress {
	out := make([]SkillProgress, len(s.ids))
	for i, id := range s.ids {
		out[i] = s.progress[id].clone()
	}
	return out
}

// Len returns the number of skills tracked.
func (s *Snapshot) Len() int {
	return len(s.ids)
}

// Attempted returns the number of skills with a Scored value.
func (s *Snapshot) Attempted() int {
	n := 0
	for _, p := range s.progress {
		if p.Score.IsScored() {
			n++
		}
	}
	return n
}

// TotalAttempts returns the number of answers recorded across all skills.
func (s *Snapshot) TotalAttempts() int {
	n := 0
	for _, p := range s.progress {
		n += p.Attempts
	}
	return n
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		ids:      append([]string(nil), s.ids...),
		progress: make(map[string]SkillProgress, len(s.progress)),
	}
	for id, p := range s.progress {
		c.progress[id] = p.clone()
	}
	return c
}

// RecordAnswer applies one answer to one skill and returns the score delta,
// measured from the seed score when the skill was unattempted. It returns
// false and leaves the snapshot untouched for an unknown skill.
func (s *Snapshot) RecordAnswer(skillID string, correct, usedHint bool, now time.Time) (float64, bool) {
	p, ok := s.progress[skillID]
	if !ok {
		return 0, false
	}
	before := p.Score.OrSeed()
	next := NextScore(p.Score, correct, usedHint)

	at := now
	p.Score = Scored(next)
	p.Attempts++
	p.LastPracticedAt = &at
	p.DecayedWeeks = 0
	s.progress[skillID] = p

	return next - before, true
}

func (s *Snapshot) set(p SkillProgress) {
	s.progress[p.SkillID] = p
}
