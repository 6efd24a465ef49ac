package tracker

import (
	"time"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/skillgraph"
)

// Graph returns the skill graph the tracker was built with.
func (t *Tracker) Graph() *skillgraph.Graph {
	return t.graph
}

// Snapshot returns a deep copy of the current progress.
func (t *Tracker) Snapshot() *mastery.Snapshot {
	return t.snap.Clone()
}

// Proficiency returns the current tier-weighted proficiency.
func (t *Tracker) Proficiency() float64 {
	return mastery.Proficiency(t.graph, t.snap)
}

// InterviewPrepUnlocked reports whether proficiency has reached the
// interview-prep threshold.
func (t *Tracker) InterviewPrepUnlocked() bool {
	return mastery.InterviewPrepUnlocked(t.Proficiency())
}

// Badges returns earned badge IDs in the order they were earned.
func (t *Tracker) Badges() []string {
	return t.earned.IDs()
}

// EarnedBadges resolves Badges against the catalog.
func (t *Tracker) EarnedBadges() []badges.Badge {
	var out []badges.Badge
	for _, id := range t.earned.IDs() {
		if b, ok := t.catalog.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// LastSessionAt returns when the last session ended, or nil.
func (t *Tracker) LastSessionAt() *time.Time {
	if t.lastSessionAt == nil {
		return nil
	}
	at := *t.lastSessionAt
	return &at
}

// SessionActive reports whether a practice session is open.
func (t *Tracker) SessionActive() bool {
	return t.session.Active()
}

// SessionDeltas returns the per-skill score change accumulated in the open
// session. It is empty when no session is open.
func (t *Tracker) SessionDeltas() map[string]float64 {
	return t.session.Deltas()
}

// NeedingAttention lists attempted skills below green, weakest first.
func (t *Tracker) NeedingAttention(limit int) []string {
	return mastery.NeedingAttention(t.graph, t.snap, limit)
}

// Recommended lists unattempted skills whose prerequisites are met.
func (t *Tracker) Recommended() []string {
	return mastery.UnlockedUnattempted(t.graph, t.snap)
}
