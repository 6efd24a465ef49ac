package skillgraph

import "fmt"

// Tier is a difficulty band. Tiers are ordered from easiest to hardest.
type Tier string

const (
	TierFoundational Tier = "foundational"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierInterview    Tier = "interview"
)

// AllTiers returns all tiers in display order.
func AllTiers() []Tier {
	return []Tier{
		TierFoundational,
		TierIntermediate,
		TierAdvanced,
		TierInterview,
	}
}

// ParseTier converts a string into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFoundational, TierIntermediate, TierAdvanced, TierInterview:
		return true
	}
	return false
}

// Weight returns the tier's contribution weight in the proficiency mean.
// Deeper tiers count more.
func (t Tier) Weight() float64 {
	switch t {
	case TierFoundational:
		return 1.0
	case TierIntermediate:
		return 1.5
	case TierAdvanced:
		return 2.0
	case TierInterview:
		return 2.5
	default:
		return 0
	}
}

// DisplayName returns a human-readable name for a tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierFoundational:
		return "Foundational"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierInterview:
		return "Interview Patterns"
	default:
		return string(t)
	}
}

// Skill is a single SQL concept node in the graph.
type Skill struct {
	ID            string
	Name          string
	Tier          Tier
	Prerequisites []string
	Description   string
}

func (s Skill) clone() Skill {
	if s.Prerequisites != nil {
		s.Prerequisites = append([]string(nil), s.Prerequisites...)
	}
	return s
}
