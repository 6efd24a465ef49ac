package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/config"
	"github.com/abhisek/sqlskills/internal/skillgraph"
	"github.com/abhisek/sqlskills/internal/store"
	"github.com/abhisek/sqlskills/internal/tracker"
)

// errNeedsSQLite is returned by commands that read the event log.
var errNeedsSQLite = errors.New("this command needs the sqlite backend (--backend sqlite)")

// env is an initialized tracker plus the resources behind it.
type env struct {
	tracker *tracker.Tracker
	store   *store.Store // nil for the file backend
}

// openEnv opens the configured backend and returns an initialized tracker.
func openEnv(cmd *cobra.Command) (*env, error) {
	graph, err := skillgraph.New(skillgraph.DefaultSkills())
	if err != nil {
		return nil, err
	}

	opts := []tracker.Option{tracker.WithLogger(logger)}
	e := &env{}

	switch cfg.Store.Backend {
	case config.BackendFile:
		path, err := resolvePath(cfg.Store.FilePath, store.DefaultFilePath)
		if err != nil {
			return nil, fmt.Errorf("resolve record path: %w", err)
		}
		logger.Debug().Str("backend", config.BackendFile).Str("path", path).Msg("opening store")
		opts = append(opts, tracker.WithPersister(store.NewFileStore(path)))

	default:
		path, err := resolvePath(cfg.Store.DBPath, store.DefaultDBPath)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		logger.Debug().Str("backend", config.BackendSQLite).Str("path", path).Msg("opening store")
		st, err := store.Open(store.DSN(path))
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
		opts = append(opts,
			tracker.WithPersister(st.Persister(cfg.Store.KeepSnapshots)),
			tracker.WithEventLog(st.EventRepo()),
		)
	}

	e.tracker = tracker.New(graph, opts...)
	for _, c := range e.tracker.Init(cmd.Context()) {
		logger.Info().Str("skill_id", c.SkillID).Int("weeks", c.Weeks).Msg("skill decayed while away")
	}
	return e, nil
}

// events returns the event log, or errNeedsSQLite for the file backend.
func (e *env) events() (store.EventRepo, error) {
	if e.store == nil {
		return nil, errNeedsSQLite
	}
	return e.store.EventRepo(), nil
}

func (e *env) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// resolvePath prefers an explicit path, then the default resolver.
func resolvePath(explicit string, fallback func() (string, error)) (string, error) {
	if explicit != "" {
		return explicit, store.EnsureDir(explicit)
	}
	return fallback()
}
