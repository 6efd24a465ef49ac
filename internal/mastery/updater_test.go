package mastery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlskills/internal/skillgraph"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNextScore(t *testing.T) {
	tests := []struct {
		name     string
		current  Score
		correct  bool
		usedHint bool
		want     float64
	}{
		{"first attempt correct", Unattempted(), true, false, 65},
		{"first attempt correct with hint", Unattempted(), true, true, 55},
		{"first attempt incorrect", Unattempted(), false, false, 30},
		{"incorrect ignores hint", Scored(60), false, true, 40},
		{"correct", Scored(65), true, false, 80},
		{"capped at 100", Scored(95), true, false, 100},
		{"floored at 0", Scored(10), false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextScore(tt.current, tt.correct, tt.usedHint))
		})
	}
}

func TestScored_Clamps(t *testing.T) {
	v, ok := Scored(140).Value()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	v, _ = Scored(-3).Value()
	assert.Equal(t, 0.0, v)

	v, ok = Unattempted().Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, "unattempted", Unattempted().String())
	assert.Equal(t, "72.5", Scored(72.5).String())
}

func TestSnapshot_RecordAnswer_FirstAttempt(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())

	delta, ok := snap.RecordAnswer("select_basics", true, false, testNow)
	require.True(t, ok)
	assert.Equal(t, 15.0, delta)

	p, ok := snap.Get("select_basics")
	require.True(t, ok)
	v, scored := p.Score.Value()
	require.True(t, scored)
	assert.Equal(t, 65.0, v)
	assert.Equal(t, 1, p.Attempts)
	require.NotNil(t, p.LastPracticedAt)
	assert.True(t, p.LastPracticedAt.Equal(testNow))
}

func TestSnapshot_RecordAnswer_Scenario(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())

	steps := []struct {
		correct bool
		want    float64
		delta   float64
	}{
		{true, 65, 15},
		{true, 80, 15},
		{false, 60, -20},
	}
	for i, step := range steps {
		delta, ok := snap.RecordAnswer("select_basics", step.correct, false, testNow)
		require.True(t, ok)
		assert.Equal(t, step.delta, delta, "step %d delta", i)
		v, _ := snap.ScoreOf("select_basics")
		assert.Equal(t, step.want, v, "step %d score", i)
	}
	p, _ := snap.Get("select_basics")
	assert.Equal(t, 3, p.Attempts)
}

func TestSnapshot_RecordAnswer_Bounds(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())

	for i := 0; i < 20; i++ {
		snap.RecordAnswer("aggregations", false, false, testNow)
		v, _ := snap.ScoreOf("aggregations")
		require.GreaterOrEqual(t, v, MinScore)
	}
	v, _ := snap.ScoreOf("aggregations")
	assert.Equal(t, 0.0, v)

	for i := 0; i < 20; i++ {
		snap.RecordAnswer("aggregations", true, false, testNow)
		v, _ := snap.ScoreOf("aggregations")
		require.LessOrEqual(t, v, MaxScore)
	}
	v, _ = snap.ScoreOf("aggregations")
	assert.Equal(t, 100.0, v)

	// Delta reports the clamped change.
	delta, _ := snap.RecordAnswer("aggregations", true, false, testNow)
	assert.Zero(t, delta)
}

func TestSnapshot_RecordAnswer_UnknownSkill(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())
	before := snap.Clone()

	_, ok := snap.RecordAnswer("nonexistent", true, false, testNow)
	assert.False(t, ok)
	assert.Equal(t, before.Entries(), snap.Entries())
}

func TestSnapshot_RecordAnswer_ResetsDecayedWeeks(t *testing.T) {
	snap := NewSnapshot(skillgraph.Default())
	snap.RecordAnswer("select_basics", true, false, testNow)
	ApplyDecay(snap, testNow.Add(3*week))

	p, _ := snap.Get("select_basics")
	require.Equal(t, 3, p.DecayedWeeks)

	snap.RecordAnswer("select_basics", true, false, testNow.Add(3*week))
	p, _ = snap.Get("select_basics")
	assert.Zero(t, p.DecayedWeeks)
}
