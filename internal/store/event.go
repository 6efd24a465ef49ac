package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Session event actions.
const (
	SessionActionStart = "start"
	SessionActionEnd   = "end"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// AnswerEventData captures one answer applied to one skill.
type AnswerEventData struct {
	SessionID   string
	SkillID     string
	Correct     bool
	UsedHint    bool
	ScoreBefore *float64 // nil when the skill was unattempted
	ScoreAfter  float64
	Timestamp   time.Time // zero means now
}

// BadgeEventData captures a badge being earned.
type BadgeEventData struct {
	SessionID   string
	BadgeID     string
	BadgeName   string
	Proficiency float64
	Timestamp   time.Time
}

// SessionEventData captures a session starting or ending.
type SessionEventData struct {
	SessionID          string
	Action             string // SessionActionStart or SessionActionEnd
	QuestionsAttempted int
	CorrectCount       int
	ProficiencyBefore  float64
	ProficiencyAfter   float64
	DurationSecs       int
	Timestamp          time.Time
}

// SessionRecord is a completed session read back from the log.
type SessionRecord struct {
	Sequence           int64
	SessionID          string
	Timestamp          time.Time
	QuestionsAttempted int
	CorrectCount       int
	ProficiencyBefore  float64
	ProficiencyAfter   float64
	DurationSecs       int
}

// BadgeRecord is an earned badge read back from the log.
type BadgeRecord struct {
	Sequence    int64
	SessionID   string
	BadgeID     string
	BadgeName   string
	Proficiency float64
	Timestamp   time.Time
}

// EventRepo provides append and query access to the progress event log.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionEvents returns ended sessions, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// BadgeHistory returns earned badges in the order they were earned.
	BadgeHistory(ctx context.Context) ([]BadgeRecord, error)

	// SkillAccuracy returns the fraction of logged answers for a skill
	// that were correct, and how many answers were logged.
	SkillAccuracy(ctx context.Context, skillID string) (float64, int, error)
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) stamp(t time.Time) string {
	if t.IsZero() {
		t = r.now()
	}
	return formatTime(t)
}

func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns(append([]string{"sequence"}, columns...)...).
		Values(append([]any{seqNum}, values...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	var before any
	if data.ScoreBefore != nil {
		before = *data.ScoreBefore
	}
	err := r.insert(ctx, answerEventsTableName,
		[]string{"timestamp", "session_id", "skill_id", "correct", "used_hint", "score_before", "score_after"},
		r.stamp(data.Timestamp), data.SessionID, data.SkillID, data.Correct, data.UsedHint, before, data.ScoreAfter,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	err := r.insert(ctx, badgeEventsTableName,
		[]string{"timestamp", "session_id", "badge_id", "badge_name", "proficiency"},
		r.stamp(data.Timestamp), data.SessionID, data.BadgeID, data.BadgeName, data.Proficiency,
	)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, sessionEventsTableName,
		[]string{
			"timestamp", "session_id", "action", "questions_attempted", "correct_count",
			"proficiency_before", "proficiency_after", "duration_secs",
		},
		r.stamp(data.Timestamp), data.SessionID, data.Action, data.QuestionsAttempted, data.CorrectCount,
		data.ProficiencyBefore, data.ProficiencyAfter, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(
		"sequence", "session_id", "timestamp", "questions_attempted", "correct_count",
		"proficiency_before", "proficiency_after", "duration_secs",
	).
		From(b.Table(sessionEventsTableName)).
		Where(entsql.EQ("action", SessionActionEnd)).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel = sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			ts  string
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &ts, &rec.QuestionsAttempted, &rec.CorrectCount,
			&rec.ProficiencyBefore, &rec.ProficiencyAfter, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		if rec.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("parse session time: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) BadgeHistory(ctx context.Context) ([]BadgeRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("sequence", "session_id", "badge_id", "badge_name", "proficiency", "timestamp").
		From(b.Table(badgeEventsTableName)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query badge history: %w", err)
	}
	defer rows.Close()

	var records []BadgeRecord
	for rows.Next() {
		var (
			rec BadgeRecord
			ts  string
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &rec.BadgeID, &rec.BadgeName, &rec.Proficiency, &ts); err != nil {
			return nil, fmt.Errorf("scan badge event: %w", err)
		}
		if rec.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("parse badge time: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, int, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(entsql.Count("*"), "COALESCE(SUM(correct), 0)").
		From(b.Table(answerEventsTableName)).
		Where(entsql.EQ("skill_id", skillID)).
		Query()

	var total, correct int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &correct); err != nil {
		return 0, 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}
