package session

import (
	"fmt"
	"time"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/skillgraph"
)

// Summary describes what changed over one practice session.
type Summary struct {
	SessionID             string
	QuestionsAttempted    int
	CorrectCount          int
	Accuracy              float64 // 0..1; 0 when no questions were attempted
	SkillsImproved        []string
	SkillsDeclined        []string
	ProficiencyBefore     float64
	ProficiencyAfter      float64
	ProficiencyDelta      float64
	NewBadges             []badges.Badge
	InterviewPrepUnlocked bool
	SuggestedFocus        string
	StartedAt             time.Time
	EndedAt               time.Time
	Duration              time.Duration
}

// Input carries everything BuildSummary needs. Before and After must be
// snapshots over the same graph.
type Input struct {
	SessionID          string
	Graph              *skillgraph.Graph
	Badges             badges.Catalog
	Before             *mastery.Snapshot
	After              *mastery.Snapshot
	BeforeBadges       []string
	QuestionsAttempted int
	CorrectCount       int
	StartedAt          time.Time
	EndedAt            time.Time
}

// DefaultFocus is suggested when no skill moved during the session.
const DefaultFocus = "Keep practicing to improve your SQL skills"

// BuildSummary compares the session baseline against the current state.
func BuildSummary(in Input) *Summary {
	before := mastery.Proficiency(in.Graph, in.Before)
	after := mastery.Proficiency(in.Graph, in.After)

	unlocked := !mastery.InterviewPrepUnlocked(before) && mastery.InterviewPrepUnlocked(after)

	sum := &Summary{
		SessionID:             in.SessionID,
		QuestionsAttempted:    in.QuestionsAttempted,
		CorrectCount:          in.CorrectCount,
		ProficiencyBefore:     before,
		ProficiencyAfter:      after,
		ProficiencyDelta:      after - before,
		NewBadges:             badges.NewlyEarned(in.Badges, after, in.BeforeBadges),
		InterviewPrepUnlocked: unlocked,
		StartedAt:             in.StartedAt,
		EndedAt:               in.EndedAt,
	}
	if in.QuestionsAttempted > 0 {
		sum.Accuracy = float64(in.CorrectCount) / float64(in.QuestionsAttempted)
	}
	if in.EndedAt.After(in.StartedAt) {
		sum.Duration = in.EndedAt.Sub(in.StartedAt)
	}

	for _, skill := range in.Graph.TopologicalOrder() {
		delta := scoreOrSeed(in.After, skill.ID) - scoreOrSeed(in.Before, skill.ID)
		switch {
		case delta > 0:
			sum.SkillsImproved = append(sum.SkillsImproved, skill.ID)
		case delta < 0:
			sum.SkillsDeclined = append(sum.SkillsDeclined, skill.ID)
		}
	}

	sum.SuggestedFocus = suggestFocus(in.Graph, sum.SkillsImproved, sum.SkillsDeclined)
	return sum
}

// suggestFocus picks one line of advice: a declined skill wins over an
// improved one.
func suggestFocus(g *skillgraph.Graph, improved, declined []string) string {
	switch {
	case len(declined) > 0:
		return fmt.Sprintf("Focus on %s to strengthen your understanding", g.Name(declined[0]))
	case len(improved) > 0:
		return fmt.Sprintf("Great progress on %s! Keep practicing", g.Name(improved[0]))
	default:
		return DefaultFocus
	}
}

func scoreOrSeed(s *mastery.Snapshot, id string) float64 {
	p, ok := s.Get(id)
	if !ok {
		return mastery.SeedScore
	}
	return p.Score.OrSeed()
}
