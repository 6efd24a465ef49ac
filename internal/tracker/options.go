package tracker

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/store"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithPersister saves the progress record after every mutation and loads
// it on Init. Without one the tracker is in-memory only.
func WithPersister(p store.Persister) Option {
	return func(t *Tracker) { t.persister = p }
}

// WithEventLog appends answer, badge and session events to repo.
func WithEventLog(repo store.EventRepo) Option {
	return func(t *Tracker) { t.events = repo }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// WithBadges replaces the built-in badge catalog.
func WithBadges(c badges.Catalog) Option {
	return func(t *Tracker) { t.catalog = c }
}

// WithOnChange registers a hook called after every state change.
func WithOnChange(fn func(Change)) Option {
	return func(t *Tracker) { t.onChange = fn }
}
