package skillgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_DefaultCatalogPasses(t *testing.T) {
	if err := validateSkills(DefaultSkills()); err != nil {
		t.Fatalf("built-in catalog validation failed: %v", err)
	}
}

func TestNew_DetectsCycle(t *testing.T) {
	skills := []Skill{
		{ID: "root", Name: "Root", Tier: TierFoundational},
		{ID: "a", Name: "A", Tier: TierFoundational, Prerequisites: []string{"root", "b"}},
		{ID: "b", Name: "B", Tier: TierFoundational, Prerequisites: []string{"a"}},
	}
	g, err := New(skills)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if g != nil {
		t.Error("graph should be nil on validation failure")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %T", err)
	}
}

func TestNew_DetectsDanglingPrereq(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Tier: TierFoundational},
		{ID: "b", Name: "B", Tier: TierFoundational, Prerequisites: []string{"nonexistent"}},
	}
	_, err := New(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Tier: TierFoundational},
		{ID: "a", Name: "A again", Tier: TierFoundational},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSkills_DetectsSelfPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "root", Name: "Root", Tier: TierFoundational},
		{ID: "a", Name: "A", Tier: TierFoundational, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for self prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self reference, got: %v", err)
	}
}

func TestValidateSkills_RequiresAtLeastOneRoot(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Tier: TierFoundational, Prerequisites: []string{"b"}},
		{ID: "b", Name: "B", Tier: TierFoundational, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidateSkills_UnknownTier(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Tier: Tier("expert")},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for unknown tier, got nil")
	}
	if !strings.Contains(err.Error(), "tier") {
		t.Errorf("error should mention tier, got: %v", err)
	}
}

func TestValidateSkills_EmptyCatalog(t *testing.T) {
	if err := validateSkills(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestValidateSkills_ReportsAllProblems(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "", Tier: TierFoundational},
		{ID: "b", Name: "B", Tier: TierFoundational, Prerequisites: []string{"x", "y"}},
	}
	err := validateSkills(skills)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) != 3 {
		t.Errorf("got %d problems, want 3: %v", len(verr.Problems), verr.Problems)
	}
}
