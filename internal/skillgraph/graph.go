package skillgraph

import (
	"slices"
	"sort"
)

// UnlockThreshold is the minimum prerequisite score (the "yellow" band)
// required before a dependent skill counts as unlocked.
const UnlockThreshold = 40.0

// ScoreSource exposes per-skill scores for unlock checks.
// The second return value is false when the skill has never been attempted.
type ScoreSource interface {
	ScoreOf(skillID string) (float64, bool)
}

// Graph is an immutable, validated skill DAG with precomputed indices.
// Construct it with New; the zero value is not usable.
type Graph struct {
	skills     []Skill
	byID       map[string]int
	byTier     map[Tier][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// New validates the skill set and builds the graph. A non-nil error is
// always a *ValidationError and means the catalog is unusable.
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}
	owned := make([]Skill, len(skills))
	for i, s := range skills {
		owned[i] = s.clone()
	}
	return buildGraph(owned), nil
}

// Default returns the graph for the built-in SQL catalog.
// It panics if the built-in catalog is invalid.
func Default() *Graph {
	g, err := New(DefaultSkills())
	if err != nil {
		panic(err)
	}
	return g
}

// buildGraph constructs the indices for an already validated skill slice,
// including topological order (Kahn's algorithm).
func buildGraph(skills []Skill) *Graph {
	gr := &Graph{
		skills:     skills,
		byID:       make(map[string]int, len(skills)),
		byTier:     make(map[Tier][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = i
	}

	// Reverse edges, in catalog order
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
	}

	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	// Seed with roots in catalog order so the result is deterministic
	// and follows the authored layout where possible.
	var queue []string
	for i := range skills {
		if inDegree[skills[i].ID] == 0 {
			queue = append(queue, skills[i].ID)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		gr.topoOrder = append(gr.topoOrder, gr.skills[gr.byID[id]])

		deps := slices.Clone(gr.dependents[id])
		sort.SliceStable(deps, func(i, j int) bool {
			return gr.byID[deps[i]] < gr.byID[deps[j]]
		})
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i, s := range gr.topoOrder {
		gr.topoIndex[s.ID] = i
	}

	for i := range gr.skills {
		s := gr.skills[i]
		if len(s.Prerequisites) == 0 {
			gr.roots = append(gr.roots, s)
		}
		gr.byTier[s.Tier] = append(gr.byTier[s.Tier], s)
	}

	return gr
}

// Len returns the number of skills in the graph.
func (g *Graph) Len() int {
	return len(g.skills)
}

// Has reports whether id names a skill in the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Get returns a skill by ID.
func (g *Graph) Get(id string) (Skill, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Skill{}, false
	}
	return g.skills[i].clone(), true
}

// Name returns the skill's display name, or the ID itself if unknown.
func (g *Graph) Name(id string) string {
	if i, ok := g.byID[id]; ok {
		return g.skills[i].Name
	}
	return id
}

// Skills returns all skills in catalog order.
func (g *Graph) Skills() []Skill {
	return cloneSkills(g.skills)
}

// IDs returns all skill IDs in catalog order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.skills))
	for i, s := range g.skills {
		ids[i] = s.ID
	}
	return ids
}

// ByTier returns all skills in a given tier, in catalog order.
func (g *Graph) ByTier(tier Tier) []Skill {
	return cloneSkills(g.byTier[tier])
}

// EntrySkills returns all skills with no prerequisites.
func (g *Graph) EntrySkills() []Skill {
	return cloneSkills(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func (g *Graph) Prerequisites(id string) []Skill {
	i, ok := g.byID[id]
	if !ok {
		return nil
	}
	s := g.skills[i]
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		result = append(result, g.skills[g.byID[prereqID]].clone())
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		result = append(result, g.skills[g.byID[depID]].clone())
	}
	return result
}

// PrerequisitesMet reports whether every prerequisite of the skill has been
// attempted and scores at least UnlockThreshold. Skills without
// prerequisites are always unlocked; unknown IDs never are.
func (g *Graph) PrerequisitesMet(id string, scores ScoreSource) bool {
	i, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range g.skills[i].Prerequisites {
		v, attempted := scores.ScoreOf(prereqID)
		if !attempted || v < UnlockThreshold {
			return false
		}
	}
	return true
}

// TopologicalOrder returns all skills in a valid topological order.
func (g *Graph) TopologicalOrder() []Skill {
	return cloneSkills(g.topoOrder)
}

// TopoIndex returns the skill's position in TopologicalOrder, or -1.
func (g *Graph) TopoIndex(id string) int {
	if i, ok := g.topoIndex[id]; ok {
		return i
	}
	return -1
}

func cloneSkills(in []Skill) []Skill {
	out := make([]Skill, len(in))
	for i, s := range in {
		out[i] = s.clone()
	}
	return out
}
