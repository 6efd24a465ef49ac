package mastery

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlskills/internal/skillgraph"
)

func TestNewSnapshot_TotalAndUnattempted(t *testing.T) {
	g := skillgraph.Default()
	snap := NewSnapshot(g)

	require.Equal(t, g.Len(), snap.Len())
	for _, id := range g.IDs() {
		p, ok := snap.Get(id)
		require.True(t, ok, "missing %q", id)
		assert.False(t, p.Score.IsScored())
		assert.Zero(t, p.Attempts)
		assert.Nil(t, p.LastPracticedAt)
	}
	assert.Zero(t, snap.Attempted())
	assert.Zero(t, snap.TotalAttempts())
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())
	snap.RecordAnswer("select_basics", true, false, testNow)

	c := snap.Clone()
	c.RecordAnswer("select_basics", false, false, testNow)

	orig, _ := snap.ScoreOf("select_basics")
	assert.Equal(t, 65.0, orig)

	p, _ := snap.Get("select_basics")
	*p.LastPracticedAt = time.Time{}
	again, _ := snap.Get("select_basics")
	assert.False(t, again.LastPracticedAt.IsZero(), "Get leaked a pointer into the snapshot")
}

func TestRestore(t *testing.T) {
	g := skillgraph.Default()
	last := testNow.Add(-48 * time.Hour)

	snap, dropped := Restore(g, []SkillProgress{
		{SkillID: "select_basics", Score: Scored(72), Attempts: 4, LastPracticedAt: &last, DecayedWeeks: 1},
		{SkillID: "where_filtering", Score: Scored(50), Attempts: 0},
		{SkillID: "order_limit", Score: Unattempted(), Attempts: -2},
		{SkillID: "legacy_skill", Score: Scored(90), Attempts: 3},
	})

	assert.Equal(t, []string{"legacy_skill"}, dropped)
	assert.Equal(t, g.Len(), snap.Len())

	want := SkillProgress{SkillID: "select_basics", Score: Scored(72), Attempts: 4, LastPracticedAt: &last, DecayedWeeks: 1}
	got, _ := snap.Get("select_basics")
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Score{})); diff != "" {
		t.Errorf("select_basics mismatch (-want +got):\n%s", diff)
	}

	wf, _ := snap.Get("where_filtering")
	assert.Equal(t, 1, wf.Attempts, "scored skill gets at least one attempt")

	ol, _ := snap.Get("order_limit")
	assert.Zero(t, ol.Attempts)

	agg, ok := snap.Get("aggregations")
	require.True(t, ok)
	assert.False(t, agg.Score.IsScored())
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		score Score
		want  Color
	}{
		{Unattempted(), ColorGray},
		{Scored(0), ColorRed},
		{Scored(39), ColorRed},
		{Scored(40), ColorYellow},
		{Scored(69), ColorYellow},
		{Scored(70), ColorGreen},
		{Scored(100), ColorGreen},
	}
	for _, tt := range tests {
		if got := ColorOf(tt.score); got != tt.want {
			t.Errorf("ColorOf(%s) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
