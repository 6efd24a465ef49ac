package mastery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlskills/internal/skillgraph"
)

func practicedSnapshot(t *testing.T, at time.Time) *Snapshot {
	t.Helper()
	snap := NewSnapshot(skillgraph.Default())
	snap.RecordAnswer("select_basics", true, false, at)
	snap.RecordAnswer("select_basics", true, false, at) // 80
	return snap
}

func TestWeeksElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"same instant", 0, 0},
		{"six days", 6 * 24 * time.Hour, 0},
		{"exactly one week", week, 1},
		{"just under two weeks", 2*week - time.Second, 1},
		{"five weeks", 5 * week, 5},
		{"future timestamp", -week, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeksElapsed(testNow, testNow.Add(tt.d)))
		})
	}
}

func TestApplyDecay_ReducesScore(t *testing.T) {
	snap := practicedSnapshot(t, testNow)

	changes := ApplyDecay(snap, testNow.Add(3*week+time.Hour))
	require.Len(t, changes, 1)
	assert.Equal(t, DecayChange{SkillID: "select_basics", Weeks: 3, From: 80, To: 74}, changes[0])

	p, _ := snap.Get("select_basics")
	v, _ := p.Score.Value()
	assert.Equal(t, 74.0, v)
	assert.Equal(t, 2, p.Attempts, "decay must not count as an attempt")
	assert.True(t, p.LastPracticedAt.Equal(testNow), "decay must not touch LastPracticedAt")
}

func TestApplyDecay_UnderAWeekIsNoop(t *testing.T) {
	snap := practicedSnapshot(t, testNow)
	assert.Empty(t, ApplyDecay(snap, testNow.Add(6*24*time.Hour)))
	v, _ := snap.ScoreOf("select_basics")
	assert.Equal(t, 80.0, v)
}

func TestApplyDecay_Idempotent(t *testing.T) {
	snap := practicedSnapshot(t, testNow)
	now := testNow.Add(4 * week)

	first := ApplyDecay(snap, now)
	require.Len(t, first, 1)
	after := snap.Clone()

	second := ApplyDecay(snap, now)
	assert.Empty(t, second)
	assert.Equal(t, after.Entries(), snap.Entries())
}

func TestApplyDecay_ChargesOnlyNewWeeks(t *testing.T) {
	snap := practicedSnapshot(t, testNow)

	ApplyDecay(snap, testNow.Add(2*week))
	v, _ := snap.ScoreOf("select_basics")
	require.Equal(t, 76.0, v)

	changes := ApplyDecay(snap, testNow.Add(5*week))
	require.Len(t, changes, 1)
	assert.Equal(t, 3, changes[0].Weeks)
	v, _ = snap.ScoreOf("select_basics")
	assert.Equal(t, 70.0, v, "total decay equals five weeks from the stored timestamp")
}

func TestApplyDecay_ClampsOverchargedWeeks(t *testing.T) {
	g := skillgraph.Default()
	last := testNow
	snap, _ := Restore(g, []SkillProgress{{
		SkillID:         "select_basics",
		Score:           Scored(80),
		Attempts:        2,
		LastPracticedAt: &last,
		DecayedWeeks:    10,
	}})

	assert.Empty(t, ApplyDecay(snap, testNow.Add(3*week)))
	p, _ := snap.Get("select_basics")
	assert.Equal(t, 3, p.DecayedWeeks)
	v, _ := snap.ScoreOf("select_basics")
	assert.Equal(t, 80.0, v)

	changes := ApplyDecay(snap, testNow.Add(4*week))
	require.Len(t, changes, 1)
	assert.Equal(t, 1, changes[0].Weeks)
	v, _ = snap.ScoreOf("select_basics")
	assert.Equal(t, 78.0, v)
}

func TestApplyDecay_FloorsAtZero(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())
	snap.RecordAnswer("select_basics", false, false, testNow) // 30

	ApplyDecay(snap, testNow.Add(52*week))
	v, ok := snap.ScoreOf("select_basics")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestApplyDecay_SkipsUnattempted(t *testing.T) {
	g := skillgraph.Default()
	snap := NewSnapshot(g)
	assert.Empty(t, ApplyDecay(snap, testNow.Add(10*week)))
	assert.Zero(t, snap.Attempted())
}
