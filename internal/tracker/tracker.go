// Package tracker keeps one learner's SQL skill progress: scores, badges,
// decay and practice sessions, saved after every change.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/session"
	"github.com/abhisek/sqlskills/internal/skillgraph"
	"github.com/abhisek/sqlskills/internal/store"
)

// ChangeKind identifies what mutated the tracker.
type ChangeKind string

const (
	ChangeLoaded       ChangeKind = "loaded"
	ChangeAnswer       ChangeKind = "answer"
	ChangeDecay        ChangeKind = "decay"
	ChangeBadge        ChangeKind = "badge"
	ChangeSessionStart ChangeKind = "session_start"
	ChangeSessionEnd   ChangeKind = "session_end"
	ChangeReset        ChangeKind = "reset"
)

// Change is passed to the OnChange hook.
type Change struct {
	Kind     ChangeKind
	SkillIDs []string // skills touched, when relevant
	BadgeIDs []string // badges earned, for ChangeBadge
}

// Tracker owns a learner's progress over a fixed skill graph.
//
// A Tracker is not safe for concurrent use. Hosts serialize calls per
// learner.
type Tracker struct {
	graph     *skillgraph.Graph
	catalog   badges.Catalog
	persister store.Persister
	events    store.EventRepo
	now       func() time.Time
	log       zerolog.Logger
	onChange  func(Change)

	snap          *mastery.Snapshot
	earned        *badges.Set
	lastSessionAt *time.Time
	session       session.State

	// readOnly is set when the stored record could not be read. The
	// tracker then works in memory only and never overwrites it.
	readOnly bool
}

// New returns a tracker with every skill Unattempted. Call Init to load
// saved progress.
func New(g *skillgraph.Graph, opts ...Option) *Tracker {
	t := &Tracker{
		graph:   g,
		catalog: badges.DefaultCatalog(),
		now:     time.Now,
		log:     zerolog.Nop(),
		snap:    mastery.NewSnapshot(g),
		earned:  badges.NewSet(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init loads the saved record, applies decay for time away and saves if
// decay changed anything. A missing, malformed or unsupported record leaves
// a fresh snapshot that later saves replace it with. Any other load failure
// also starts fresh but disables saving, so the stored record survives.
func (t *Tracker) Init(ctx context.Context) []mastery.DecayChange {
	t.load(ctx)

	changes := mastery.ApplyDecay(t.snap, t.now())
	if len(changes) == 0 {
		return nil
	}

	ids := make([]string, len(changes))
	for i, c := range changes {
		ids[i] = c.SkillID
		t.log.Debug().
			Str("skill_id", c.SkillID).
			Int("weeks", c.Weeks).
			Float64("from", c.From).
			Float64("to", c.To).
			Msg("score decayed")
	}
	t.log.Info().Int("skills", len(changes)).Msg("applied decay")

	t.save(ctx)
	t.notify(Change{Kind: ChangeDecay, SkillIDs: ids})
	return changes
}

func (t *Tracker) load(ctx context.Context) {
	if t.persister == nil {
		return
	}
	rec, err := t.persister.Load(ctx)
	switch {
	case errors.Is(err, store.ErrMalformedRecord), errors.Is(err, store.ErrUnsupportedVersion):
		t.log.Warn().Err(err).Msg("could not load progress, starting fresh")
		return
	case err != nil:
		t.readOnly = true
		t.log.Warn().Err(err).Msg("could not load progress, changes will not be saved")
		return
	}
	if rec == nil {
		return
	}

	snap, dropped := rec.Snapshot(t.graph)
	for _, id := range dropped {
		t.log.Warn().Str("skill_id", id).Msg("dropping progress for unknown skill")
	}

	earned := badges.NewSet()
	for _, id := range rec.Badges {
		if _, ok := t.catalog.Get(id); !ok {
			t.log.Warn().Str("badge", id).Msg("dropping unknown badge")
			continue
		}
		earned.Add(id)
	}

	t.snap = snap
	t.earned = earned
	t.lastSessionAt = rec.LastSessionAt
	t.log.Debug().Int("attempted", snap.Attempted()).Int("badges", earned.Len()).Msg("loaded progress")
	t.notify(Change{Kind: ChangeLoaded})
}

// RecordAnswer applies one answer to each listed skill and returns the
// score change per applied skill. Unknown IDs are logged and skipped; a
// repeated ID is applied once. Badges are checked after all skills are
// updated.
func (t *Tracker) RecordAnswer(ctx context.Context, skillIDs []string, wasCorrect, usedHint bool) map[string]float64 {
	now := t.now()
	deltas := make(map[string]float64, len(skillIDs))
	var applied []string

	for _, id := range skillIDs {
		if _, dup := deltas[id]; dup {
			continue
		}
		prev, known := t.snap.Get(id)
		if !known {
			t.log.Warn().Str("skill_id", id).Msg("ignoring answer for unknown skill")
			continue
		}
		delta, _ := t.snap.RecordAnswer(id, wasCorrect, usedHint, now)
		deltas[id] = delta
		applied = append(applied, id)
		t.logAnswer(ctx, prev, wasCorrect, usedHint, now)
	}
	if len(applied) == 0 {
		return deltas
	}

	t.session.Observe(wasCorrect, deltas)
	t.checkBadges(ctx, now)
	t.save(ctx)
	t.notify(Change{Kind: ChangeAnswer, SkillIDs: applied})
	return deltas
}

func (t *Tracker) logAnswer(ctx context.Context, prev mastery.SkillProgress, correct, usedHint bool, now time.Time) {
	if t.events == nil {
		return
	}
	after, _ := t.snap.ScoreOf(prev.SkillID)
	data := store.AnswerEventData{
		SessionID:  t.session.ID(),
		SkillID:    prev.SkillID,
		Correct:    correct,
		UsedHint:   usedHint,
		ScoreAfter: after,
		Timestamp:  now,
	}
	if v, ok := prev.Score.Value(); ok {
		data.ScoreBefore = &v
	}
	if err := t.events.AppendAnswerEvent(ctx, data); err != nil {
		t.log.Warn().Err(err).Str("skill_id", prev.SkillID).Msg("could not log answer")
	}
}

// checkBadges awards every badge the current proficiency reaches.
func (t *Tracker) checkBadges(ctx context.Context, now time.Time) {
	prof := mastery.Proficiency(t.graph, t.snap)
	earned := badges.NewlyEarned(t.catalog, prof, t.earned.IDs())
	if len(earned) == 0 {
		return
	}

	ids := make([]string, len(earned))
	for i, b := range earned {
		ids[i] = b.ID
		t.earned.Add(b.ID)
		t.log.Info().Str("badge", b.ID).Float64("proficiency", prof).Msg("badge earned")
		if t.events == nil {
			continue
		}
		err := t.events.AppendBadgeEvent(ctx, store.BadgeEventData{
			SessionID:   t.session.ID(),
			BadgeID:     b.ID,
			BadgeName:   b.Name,
			Proficiency: prof,
			Timestamp:   now,
		})
		if err != nil {
			t.log.Warn().Err(err).Str("badge", b.ID).Msg("could not log badge")
		}
	}
	t.notify(Change{Kind: ChangeBadge, BadgeIDs: ids})
}

// StartSession opens a practice session with the current state as its
// baseline. It returns session.ErrSessionActive if one is already open.
func (t *Tracker) StartSession(ctx context.Context) error {
	now := t.now()
	if err := t.session.Start(t.snap, t.earned.IDs(), now); err != nil {
		return err
	}
	t.log.Debug().Str("session_id", t.session.ID()).Msg("session started")

	if t.events != nil {
		err := t.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         t.session.ID(),
			Action:            store.SessionActionStart,
			ProficiencyBefore: t.Proficiency(),
			Timestamp:         now,
		})
		if err != nil {
			t.log.Warn().Err(err).Msg("could not log session start")
		}
	}
	t.notify(Change{Kind: ChangeSessionStart})
	return nil
}

// EndSession closes the open session and summarizes it. It returns false
// when no session is open.
func (t *Tracker) EndSession(ctx context.Context) (*session.Summary, bool) {
	now := t.now()
	sum, ok := t.session.Finish(session.Input{Graph: t.graph, Badges: t.catalog}, t.snap, now)
	if !ok {
		return nil, false
	}
	t.lastSessionAt = &now
	t.log.Debug().
		Str("session_id", sum.SessionID).
		Int("questions", sum.QuestionsAttempted).
		Float64("delta", sum.ProficiencyDelta).
		Msg("session ended")

	if t.events != nil {
		err := t.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:          sum.SessionID,
			Action:             store.SessionActionEnd,
			QuestionsAttempted: sum.QuestionsAttempted,
			CorrectCount:       sum.CorrectCount,
			ProficiencyBefore:  sum.ProficiencyBefore,
			ProficiencyAfter:   sum.ProficiencyAfter,
			DurationSecs:       int(sum.Duration.Seconds()),
			Timestamp:          now,
		})
		if err != nil {
			t.log.Warn().Err(err).Msg("could not log session end")
		}
	}

	t.save(ctx)
	t.notify(Change{Kind: ChangeSessionEnd})
	return sum, true
}

// ResetProgress returns every skill to Unattempted, clears badges and
// drops any open session. The stored record is cleared and a fresh one
// saved. The event log is history and is kept.
func (t *Tracker) ResetProgress(ctx context.Context) {
	t.snap = mastery.NewSnapshot(t.graph)
	t.earned = badges.NewSet()
	t.lastSessionAt = nil
	t.session.Reset()

	if t.persister != nil && !t.readOnly {
		if err := t.persister.Clear(ctx); err != nil {
			t.log.Warn().Err(err).Msg("could not clear saved progress")
		}
	}
	t.save(ctx)
	t.log.Info().Msg("progress reset")
	t.notify(Change{Kind: ChangeReset})
}

func (t *Tracker) save(ctx context.Context) {
	if t.persister == nil {
		return
	}
	if t.readOnly {
		t.log.Debug().Msg("skipping save, stored progress was not readable")
		return
	}
	rec := store.NewRecord(t.snap, t.earned.IDs(), t.lastSessionAt, t.now())
	if err := t.persister.Save(ctx, rec); err != nil {
		t.log.Warn().Err(err).Msg("could not save progress")
	}
}

func (t *Tracker) notify(c Change) {
	if t.onChange != nil {
		t.onChange(c)
	}
}
