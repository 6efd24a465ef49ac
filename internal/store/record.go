package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/skillgraph"
)

// RecordVersion is the format version written by Encode. Decode accepts
// any version with the same major.
const RecordVersion = "v1"

var (
	// ErrMalformedRecord reports stored data that is not a valid record.
	ErrMalformedRecord = errors.New("malformed progress record")

	// ErrUnsupportedVersion reports a record written by an incompatible
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported progress record version")
)

// Persister loads and saves a learner's progress record.
type Persister interface {
	// Load returns the stored record, or nil if none has been saved.
	Load(ctx context.Context) (*Record, error)

	// Save replaces the stored record.
	Save(ctx context.Context, rec *Record) error

	// Clear removes the stored record.
	Clear(ctx context.Context) error
}

// Record is the persisted form of a learner's progress.
type Record struct {
	Version       string                   `json:"version"`
	Progress      map[string]ProgressEntry `json:"progress"`
	Badges        []string                 `json:"badges"`
	LastSessionAt *time.Time               `json:"lastSessionAt"`
	SavedAt       time.Time                `json:"savedAt"`
}

// ProgressEntry is one skill's persisted progress. A nil Score means the
// skill has not been attempted.
type ProgressEntry struct {
	SkillID       string     `json:"skillId"`
	Score         *float64   `json:"score"`
	Attempts      int        `json:"attempts"`
	LastPracticed *time.Time `json:"lastPracticed"`
	DecayedWeeks  int        `json:"decayedWeeks,omitempty"`
}

// NewRecord captures a snapshot and earned badges for saving.
func NewRecord(s *mastery.Snapshot, earned []string, lastSessionAt *time.Time, savedAt time.Time) *Record {
	rec := &Record{
		Version:  RecordVersion,
		Progress: make(map[string]ProgressEntry, s.Len()),
		Badges:   append([]string{}, earned...),
		SavedAt:  savedAt.UTC(),
	}
	if lastSessionAt != nil {
		t := lastSessionAt.UTC()
		rec.LastSessionAt = &t
	}
	for _, p := range s.Entries() {
		e := ProgressEntry{
			SkillID:      p.SkillID,
			Attempts:     p.Attempts,
			DecayedWeeks: p.DecayedWeeks,
		}
		if v, ok := p.Score.Value(); ok {
			e.Score = &v
		}
		if p.LastPracticedAt != nil {
			t := p.LastPracticedAt.UTC()
			e.LastPracticed = &t
		}
		rec.Progress[p.SkillID] = e
	}
	return rec
}

// Snapshot rebuilds a total snapshot for g. Entries for skills g does not
// know are dropped and their IDs returned, sorted.
func (r *Record) Snapshot(g *skillgraph.Graph) (*mastery.Snapshot, []string) {
	entries := make([]mastery.SkillProgress, 0, len(r.Progress))
	for key, e := range r.Progress {
		id := e.SkillID
		if id == "" {
			id = key
		}
		p := mastery.SkillProgress{
			SkillID:         id,
			Score:           mastery.Unattempted(),
			Attempts:        e.Attempts,
			LastPracticedAt: e.LastPracticed,
			DecayedWeeks:    e.DecayedWeeks,
		}
		if e.Score != nil {
			p.Score = mastery.Scored(*e.Score)
		}
		entries = append(entries, p)
	}
	snap, dropped := mastery.Restore(g, entries)
	sort.Strings(dropped)
	return snap, dropped
}

//go:embed record.schema.json
var recordSchemaJSON []byte

var recordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(recordSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse record schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://progress-record.json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

// Encode serializes a record.
func Encode(rec *Record) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return b, nil
}

// Decode validates and parses a stored record. Structural problems wrap
// ErrMalformedRecord; an incompatible version wraps ErrUnsupportedVersion.
func Decode(data []byte) (*Record, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedRecord, err)
	}

	compiled, err := recordSchema()
	if err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if !semver.IsValid(rec.Version) || semver.Major(rec.Version) != semver.Major(RecordVersion) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, rec.Version)
	}
	return &rec, nil
}
