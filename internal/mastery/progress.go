package mastery

import "time"

// SkillProgress holds the learner's state for a single skill.
type SkillProgress struct {
	SkillID         string
	Score           Score
	Attempts        int
	LastPracticedAt *time.Time

	// DecayedWeeks is how many whole weeks since LastPracticedAt have
	// already been charged by ApplyDecay.
	DecayedWeeks int
}

func newSkillProgress(skillID string) SkillProgress {
	return SkillProgress{SkillID: skillID, Score: Unattempted()}
}

func (p SkillProgress) clone() SkillProgress {
	if p.LastPracticedAt != nil {
		t := *p.LastPracticedAt
		p.LastPracticedAt = &t
	}
	return p
}

// Color is the mastery band used when displaying a score.
type Color string

const (
	ColorGray   Color = "gray"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
)

const (
	// YellowThreshold is the lowest score in the yellow band.
	YellowThreshold = 40.0
	// GreenThreshold is the lowest score in the green band.
	GreenThreshold = 70.0
)

// ColorOf returns the display band for a score.
func ColorOf(s Score) Color {
	v, ok := s.Value()
	switch {
	case !ok:
		return ColorGray
	case v < YellowThreshold:
		return ColorRed
	case v < GreenThreshold:
		return ColorYellow
	default:
		return ColorGreen
	}
}
