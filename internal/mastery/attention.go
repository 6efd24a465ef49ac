package mastery

import (
	"sort"

	"github.com/abhisek/sqlskills/internal/skillgraph"
)

// DefaultAttentionLimit caps NeedingAttention when no limit is given.
const DefaultAttentionLimit = 5

// NeedingAttention returns attempted skills below the green band, lowest
// score first; ties keep catalog order. limit <= 0 uses
// DefaultAttentionLimit.
func NeedingAttention(g *skillgraph.Graph, s *Snapshot, limit int) []string {
	if limit <= 0 {
		limit = DefaultAttentionLimit
	}

	type scored struct {
		id    string
		score float64
	}
	var candidates []scored
	for _, id := range g.IDs() {
		v, ok := s.ScoreOf(id)
		if !ok || v >= GreenThreshold {
			continue
		}
		candidates = append(candidates, scored{id: id, score: v})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}

// UnlockedUnattempted returns skills that have never been attempted but
// whose prerequisites are met, in catalog order.
func UnlockedUnattempted(g *skillgraph.Graph, s *Snapshot) []string {
	var ids []string
	for _, id := range g.IDs() {
		if _, attempted := s.ScoreOf(id); attempted {
			continue
		}
		if g.PrerequisitesMet(id, s) {
			ids = append(ids, id)
		}
	}
	return ids
}
