package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Snapshot is one saved copy of a progress record.
type Snapshot struct {
	ID       int
	Sequence int64
	SavedAt  time.Time
	Data     json.RawMessage
}

// SnapshotRepo manages saved progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is assigned from the
	// global counter.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Sequence == 0 {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		snap.Sequence = seqNum
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(snapshotsTableName).
		Columns("sequence", "saved_at", "data").
		Values(snap.Sequence, formatTime(snap.SavedAt), string(snap.Data)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		snap.ID = int(id)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("id", "sequence", "saved_at", "data").
		From(b.Table(snapshotsTableName)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()

	var (
		snap    Snapshot
		savedAt string
		data    []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&snap.ID, &snap.Sequence, &savedAt, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	if snap.SavedAt, err = parseTime(savedAt); err != nil {
		return nil, fmt.Errorf("parse snapshot time: %w", err)
	}
	snap.Data = data
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence of the newest snapshot that falls outside keep.
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("sequence").
		From(b.Table(snapshotsTableName)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Offset(keep).
		Query()

	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil // fewer than keep snapshots exist
		}
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	query, args = b.Delete(snapshotsTableName).
		Where(entsql.LTE("sequence", threshold)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(snapshotsTableName).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// snapshotPersister stores each saved record as a new snapshot row.
type snapshotPersister struct {
	repo SnapshotRepo
	keep int
	now  func() time.Time
}

func (p *snapshotPersister) Load(ctx context.Context) (*Record, error) {
	snap, err := p.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	return Decode(snap.Data)
}

func (p *snapshotPersister) Save(ctx context.Context, rec *Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = p.now()
	}
	if err := p.repo.Save(ctx, &Snapshot{SavedAt: savedAt, Data: data}); err != nil {
		return err
	}
	if p.keep > 0 {
		return p.repo.Prune(ctx, p.keep)
	}
	return nil
}

func (p *snapshotPersister) Clear(ctx context.Context) error {
	return p.repo.Clear(ctx)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
