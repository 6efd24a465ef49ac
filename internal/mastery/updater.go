package mastery

// Score deltas applied per answer. The penalty outweighs the reward so
// mastery needs sustained correctness; hint-assisted answers earn less.
const (
	CorrectDelta   = 15.0
	HintDelta      = 5.0
	IncorrectDelta = -20.0
)

// AnswerDelta returns the raw delta for an answer outcome.
func AnswerDelta(correct, usedHint bool) float64 {
	switch {
	case !correct:
		return IncorrectDelta
	case usedHint:
		return HintDelta
	default:
		return CorrectDelta
	}
}

// NextScore computes the new score for a skill after an answer:
// clamp(0, 100, base + delta), where base is the current value or
// SeedScore for a first attempt.
func NextScore(current Score, correct, usedHint bool) float64 {
	return clamp(current.OrSeed()+AnswerDelta(correct, usedHint), MinScore, MaxScore)
}
