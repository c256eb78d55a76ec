package cmd

import (
	"context"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/badges"
	"github.com/abhisek/olympus/internal/catalog"
	"github.com/abhisek/olympus/internal/draw"
	"github.com/abhisek/olympus/internal/engine"
	"github.com/abhisek/olympus/internal/route"
	"github.com/abhisek/olympus/internal/state"
	"github.com/abhisek/olympus/internal/store"
	"github.com/abhisek/olympus/internal/ui/report"
)

// app bundles the opened store and the engine for one command invocation.
type app struct {
	store  *store.Store
	engine *engine.Engine
}

// openApp opens the store and builds the engine from the loaded config.
func openApp(cmd *cobra.Command) (*app, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	log := logrus.StandardLogger()

	s, err := store.Open(dbPath, store.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var src draw.Source = draw.NewRandom()
	if cfg.Seed != 0 {
		src = draw.New(cfg.Seed)
	}

	e := engine.New(catalog.Default(), route.Default(), badges.NewFactory(src), engine.WithLogger(log))
	log.WithField("db", dbPath).Debug("store opened")
	return &app{store: s, engine: e}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// load returns the current document for read-only commands.
func (a *app) load(ctx context.Context) (*state.State, error) {
	return a.store.Load(ctx)
}

// mutate runs one engine operation inside a store update, prints its
// confirmation and prunes old snapshots.
func (a *app) mutate(cmd *cobra.Command, action string, op func(*state.State) (string, error)) error {
	ctx := cmd.Context()
	msg, err := a.store.Update(ctx, action, op)
	if err != nil {
		return err
	}
	lipgloss.Fprintln(cmd.OutOrStdout(), report.Confirm(msg))

	if err := a.store.Prune(ctx, cfg.SnapshotKeep); err != nil {
		logrus.WithError(err).Warn("snapshot prune failed")
	}
	return nil
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
