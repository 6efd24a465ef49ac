package skillgraph

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a skill set.
// It is a configuration error: a graph that fails validation is never built.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("skill graph validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateSkills performs all structural checks on the given skill set.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	if len(skills) == 0 {
		return &ValidationError{Problems: []string{"skill catalog is empty"}}
	}

	idSet := make(map[string]bool, len(skills))

	// Check for empty and duplicate IDs
	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("skill %q has an empty ID", s.Name))
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range skills {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("skill %q has an empty name", s.ID))
		}
		if !s.Tier.Valid() {
			errs = append(errs, fmt.Sprintf("skill %q has unknown tier %q", s.ID, s.Tier))
		}
	}

	// Check for dangling and self prerequisites
	for _, s := range skills {
		seen := make(map[string]bool, len(s.Prerequisites))
		for _, prereqID := range s.Prerequisites {
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
				continue
			}
			if seen[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q lists prerequisite %q twice", s.ID, prereqID))
				continue
			}
			seen[prereqID] = true
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm, over resolvable edges only
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = 0
	}
	for _, s := range skills {
		for _, prereqID := range uniqueResolvable(s, idSet) {
			inDegree[s.ID]++
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(inDegree) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

// uniqueResolvable returns the skill's prerequisites that exist in idSet,
// without duplicates or self references.
func uniqueResolvable(s Skill, idSet map[string]bool) []string {
	seen := make(map[string]bool, len(s.Prerequisites))
	var out []string
	for _, id := range s.Prerequisites {
		if id == s.ID || seen[id] || !idSet[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
