package mastery

import "strconv"

const (
	// MinScore and MaxScore bound every Scored value.
	MinScore = 0.0
	MaxScore = 100.0

	// SeedScore is the base a first attempt is scored from.
	SeedScore = 50.0
)

// Score is either Unattempted or Scored with a value in [MinScore, MaxScore].
// The zero value is Unattempted.
type Score struct {
	value  float64
	scored bool
}

// Unattempted returns the score of a skill that has never been answered.
func Unattempted() Score {
	return Score{}
}

// Scored returns a score holding v clamped to [MinScore, MaxScore].
func Scored(v float64) Score {
	return Score{value: clamp(v, MinScore, MaxScore), scored: true}
}

// Value returns the numeric score and true, or 0 and false when unattempted.
func (s Score) Value() (float64, bool) {
	return s.value, s.scored
}

// IsScored reports whether the skill has been attempted.
func (s Score) IsScored() bool {
	return s.scored
}

// OrSeed returns the value, or SeedScore for an unattempted skill.
func (s Score) OrSeed() float64 {
	if !s.scored {
		return SeedScore
	}
	return s.value
}

func (s Score) String() string {
	if !s.scored {
		return "unattempted"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
