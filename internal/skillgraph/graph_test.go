package skillgraph

import (
	"testing"
)

type scoreMap map[string]float64

func (m scoreMap) ScoreOf(id string) (float64, bool) {
	v, ok := m[id]
	return v, ok
}

func TestGet_Exists(t *testing.T) {
	g := Default()
	s, ok := g.Get("select_basics")
	if !ok {
		t.Fatal("select_basics not found")
	}
	if s.Name != "SELECT Basics" {
		t.Errorf("got name %q, want %q", s.Name, "SELECT Basics")
	}
	if s.Tier != TierFoundational {
		t.Errorf("got tier %q, want %q", s.Tier, TierFoundational)
	}
}

func TestGet_NotFound(t *testing.T) {
	g := Default()
	if _, ok := g.Get("nonexistent"); ok {
		t.Fatal("expected nonexistent skill to be missing")
	}
	if g.Has("nonexistent") {
		t.Error("Has(nonexistent) = true")
	}
	if got := g.Name("nonexistent"); got != "nonexistent" {
		t.Errorf("Name fallback = %q, want the id", got)
	}
}

func TestSkills_Count(t *testing.T) {
	g := Default()
	if g.Len() != 26 {
		t.Errorf("got %d skills, want 26", g.Len())
	}
	if len(g.IDs()) != 26 {
		t.Errorf("got %d ids, want 26", len(g.IDs()))
	}
}

func TestByTier(t *testing.T) {
	g := Default()
	tests := []struct {
		tier Tier
		want int
	}{
		{TierFoundational, 6},
		{TierIntermediate, 7},
		{TierAdvanced, 7},
		{TierInterview, 6},
	}
	for _, tt := range tests {
		skills := g.ByTier(tt.tier)
		if len(skills) != tt.want {
			t.Errorf("ByTier(%q): got %d skills, want %d", tt.tier, len(skills), tt.want)
		}
		for _, s := range skills {
			if s.Tier != tt.tier {
				t.Errorf("ByTier(%q) returned %q with tier %q", tt.tier, s.ID, s.Tier)
			}
		}
	}
}

func TestEntrySkills(t *testing.T) {
	g := Default()
	roots := g.EntrySkills()
	if len(roots) != 1 {
		t.Fatalf("got %d entry skills, want 1", len(roots))
	}
	if roots[0].ID != "select_basics" {
		t.Errorf("entry skill = %q, want select_basics", roots[0].ID)
	}
}

func TestPrerequisites(t *testing.T) {
	g := Default()

	prereqs := g.Prerequisites("retention_analysis")
	if len(prereqs) != 3 {
		t.Fatalf("retention_analysis: got %d prereqs, want 3", len(prereqs))
	}
	ids := map[string]bool{}
	for _, p := range prereqs {
		ids[p.ID] = true
	}
	for _, want := range []string{"window_analytics", "date_time", "self_joins"} {
		if !ids[want] {
			t.Errorf("retention_analysis missing prereq %q", want)
		}
	}

	if got := g.Prerequisites("select_basics"); len(got) != 0 {
		t.Errorf("select_basics: got %d prereqs, want 0", len(got))
	}
	if got := g.Prerequisites("nonexistent"); got != nil {
		t.Errorf("nonexistent: got %v, want nil", got)
	}
}

func TestDependents(t *testing.T) {
	g := Default()
	deps := g.Dependents("select_basics")
	want := []string{"where_filtering", "order_limit", "aggregations", "case_statements", "string_functions", "set_operations"}
	if len(deps) != len(want) {
		t.Fatalf("got %d dependents, want %d", len(deps), len(want))
	}
	for i, id := range want {
		if deps[i].ID != id {
			t.Errorf("dependent[%d] = %q, want %q", i, deps[i].ID, id)
		}
	}

	if got := g.Dependents("attribution"); len(got) != 0 {
		t.Errorf("attribution should have no dependents, got %d", len(got))
	}
}

func TestPrerequisitesMet(t *testing.T) {
	g := Default()

	tests := []struct {
		name   string
		id     string
		scores scoreMap
		want   bool
	}{
		{"entry skill always unlocked", "select_basics", scoreMap{}, true},
		{"unattempted prereq", "where_filtering", scoreMap{}, false},
		{"prereq in red band", "where_filtering", scoreMap{"select_basics": 39.9}, false},
		{"prereq exactly yellow", "where_filtering", scoreMap{"select_basics": 40}, true},
		{"prereq green", "where_filtering", scoreMap{"select_basics": 90}, true},
		{"one of two prereqs", "multi_joins", scoreMap{"basic_joins": 80}, false},
		{"both prereqs", "multi_joins", scoreMap{"basic_joins": 80, "groupby_having": 45}, true},
		{"unknown skill", "nonexistent", scoreMap{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.PrerequisitesMet(tt.id, tt.scores); got != tt.want {
				t.Errorf("PrerequisitesMet(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := Default()
	topo := g.TopologicalOrder()
	if len(topo) != 26 {
		t.Fatalf("got %d skills in topo order, want 26", len(topo))
	}

	// Every skill appears after all its prerequisites
	posMap := make(map[string]int, len(topo))
	for i, s := range topo {
		posMap[s.ID] = i
	}
	for _, s := range topo {
		for _, prereqID := range s.Prerequisites {
			if posMap[prereqID] >= posMap[s.ID] {
				t.Errorf("skill %q (pos %d) appears before prerequisite %q (pos %d)",
					s.ID, posMap[s.ID], prereqID, posMap[prereqID])
			}
		}
		if g.TopoIndex(s.ID) != posMap[s.ID] {
			t.Errorf("TopoIndex(%q) = %d, want %d", s.ID, g.TopoIndex(s.ID), posMap[s.ID])
		}
	}
	if topo[0].ID != "select_basics" {
		t.Errorf("first skill = %q, want select_basics", topo[0].ID)
	}
	if g.TopoIndex("nonexistent") != -1 {
		t.Error("TopoIndex of unknown skill should be -1")
	}
}

func TestSkills_ReturnsCopy(t *testing.T) {
	g := Default()
	a := g.Skills()
	a[0].Name = "MUTATED"
	a[1].Prerequisites[0] = "MUTATED"

	b := g.Skills()
	if b[0].Name == "MUTATED" {
		t.Error("Skills did not return a defensive copy")
	}
	if b[1].Prerequisites[0] == "MUTATED" {
		t.Error("Skills shares prerequisite slices with the graph")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Tier: TierFoundational},
		{ID: "b", Name: "B", Tier: TierAdvanced, Prerequisites: []string{"a"}},
	}
	g, err := New(skills)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	skills[1].Prerequisites[0] = "zzz"
	skills[0].Name = "changed"

	if s, _ := g.Get("a"); s.Name != "A" {
		t.Errorf("graph observed caller mutation of name: %q", s.Name)
	}
	if !g.PrerequisitesMet("b", scoreMap{"a": 50}) {
		t.Error("graph observed caller mutation of prerequisites")
	}
}

func TestTierWeights(t *testing.T) {
	tests := []struct {
		tier Tier
		want float64
	}{
		{TierFoundational, 1.0},
		{TierIntermediate, 1.5},
		{TierAdvanced, 2.0},
		{TierInterview, 2.5},
		{Tier("bogus"), 0},
	}
	for _, tt := range tests {
		if got := tt.tier.Weight(); got != tt.want {
			t.Errorf("%q.Weight() = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestParseTier(t *testing.T) {
	if tier, err := ParseTier("advanced"); err != nil || tier != TierAdvanced {
		t.Errorf("ParseTier(advanced) = %q, %v", tier, err)
	}
	if _, err := ParseTier("expert"); err == nil {
		t.Error("ParseTier(expert) should fail")
	}
}
