package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	snapshotsTableName      = "progress_snapshots"
	answerEventsTableName   = "answer_events"
	badgeEventsTableName    = "badge_events"
	sessionEventsTableName  = "session_events"
	globalSequenceTableName = "global_sequence"
)

var (
	// GlobalSequenceColumns holds the single-row event sequence counter.
	GlobalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	GlobalSequenceTable = &schema.Table{
		Name:       globalSequenceTableName,
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// SnapshotsColumns holds the columns for the "progress_snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "saved_at", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
	}
	SnapshotsTable = &schema.Table{
		Name:       snapshotsTableName,
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_sequence", Columns: []*schema.Column{SnapshotsColumns[1]}},
		},
	}

	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "used_hint", Type: field.TypeBool},
		{Name: "score_before", Type: field.TypeFloat64, Nullable: true},
		{Name: "score_after", Type: field.TypeFloat64},
	}
	AnswerEventsTable = &schema.Table{
		Name:       answerEventsTableName,
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_skill_id", Columns: []*schema.Column{AnswerEventsColumns[4]}},
			{Name: "answerevent_session_id", Columns: []*schema.Column{AnswerEventsColumns[3]}},
		},
	}

	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "badge_name", Type: field.TypeString},
		{Name: "proficiency", Type: field.TypeFloat64},
	}
	BadgeEventsTable = &schema.Table{
		Name:       badgeEventsTableName,
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "badgeevent_session_id", Columns: []*schema.Column{BadgeEventsColumns[3]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_attempted", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "proficiency_before", Type: field.TypeFloat64, Default: 0},
		{Name: "proficiency_after", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTableName,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
			{Name: "sessionevent_action", Columns: []*schema.Column{SessionEventsColumns[4]}},
		},
	}

	// Tables holds every table the store migrates.
	Tables = []*schema.Table{
		GlobalSequenceTable,
		SnapshotsTable,
		AnswerEventsTable,
		BadgeEventsTable,
		SessionEventsTable,
	}
)
