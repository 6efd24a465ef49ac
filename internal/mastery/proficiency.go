package mastery

import "github.com/abhisek/sqlskills/internal/skillgraph"

// Proficiency returns the tier-weighted mean score over attempted skills.
// Unattempted skills are excluded from both sums; with nothing attempted
// the result is 0. It is recomputed from the snapshot on every call.
func Proficiency(g *skillgraph.Graph, s *Snapshot) float64 {
	var weightedSum, totalWeight float64
	for _, skill := range g.Skills() {
		v, ok := s.ScoreOf(skill.ID)
		if !ok {
			continue
		}
		w := skill.Tier.Weight()
		weightedSum += v * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// InterviewPrepThreshold is the proficiency at which interview-tier
// practice unlocks.
const InterviewPrepThreshold = 70.0

// InterviewPrepUnlocked reports whether proficiency reaches the
// interview-prep threshold.
func InterviewPrepUnlocked(proficiency float64) bool {
	return proficiency >= InterviewPrepThreshold
}
