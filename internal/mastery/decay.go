package mastery

import "time"

const (
	// DecayPerWeek is added to a scored skill for every whole week
	// without practice.
	DecayPerWeek = -2.0

	week = 7 * 24 * time.Hour
)

// DecayChange records a score reduction applied by ApplyDecay.
type DecayChange struct {
	SkillID string
	Weeks   int // weeks charged by this application
	From    float64
	To      float64
}

// ApplyDecay reduces scores of skills left unpracticed for whole weeks.
// Elapsed weeks are measured from each skill's stored LastPracticedAt, and
// only weeks not already charged are applied, so repeating the call with
// the same now is a no-op. A charged count ahead of the elapsed weeks is
// lowered to match without changing the score. Attempts and LastPracticedAt
// never change.
func ApplyDecay(s *Snapshot, now time.Time) []DecayChange {
	var changes []DecayChange
	for _, id := range s.ids {
		p := s.progress[id]
		v, ok := p.Score.Value()
		if !ok || p.LastPracticedAt == nil {
			continue
		}
		weeks := WeeksElapsed(*p.LastPracticedAt, now)
		due := weeks - p.DecayedWeeks
		if due < 0 {
			// More weeks charged than have passed (clock moved back or an
			// edited record); later decay counts from the real elapsed time.
			p.DecayedWeeks = weeks
			s.set(p)
			continue
		}
		if due == 0 {
			continue
		}
		next := clamp(v+float64(due)*DecayPerWeek, MinScore, MaxScore)
		p.Score = Scored(next)
		p.DecayedWeeks = weeks
		s.set(p)
		changes = append(changes, DecayChange{SkillID: id, Weeks: due, From: v, To: next})
	}
	return changes
}

// WeeksElapsed returns floor((now - since) / 7 days), or 0 if since is
// not before now.
func WeeksElapsed(since, now time.Time) int {
	d := now.Sub(since)
	if d <= 0 {
		return 0
	}
	return int(d / week)
}
