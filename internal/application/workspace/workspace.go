// Package workspace assembles the board, the timer, the statistics and the
// console over one key-value store. Every surface (TUI, CLI, MCP) opens a
// Workspace instead of wiring the parts itself.
package workspace

import (
	"fmt"
	"log/slog"
	"time"

	"kanbodoro/internal/application"
	"kanbodoro/internal/application/console"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// Options configures Open
type Options struct {
	Plan     domain.SessionPlan
	Now      func() time.Time
	NewID    func() string
	Logger   *slog.Logger
	Notifier ports.Notifier

	// SeedDefaults adds one placeholder item per column when the stored
	// board is empty
	SeedDefaults bool
}

// Workspace owns one board and everything that acts on it. It is not safe
// for concurrent use; callers serialize access.
type Workspace struct {
	KV      ports.KVStore
	Store   *application.BoardStore
	Repo    *application.Repository
	Timer   *application.Pomodoro
	Stats   *application.StatsAggregator
	Console *console.Interpreter

	now    func() time.Time
	logger *slog.Logger
}

// Ensure Workspace implements Resetter
var _ ports.Resetter = (*Workspace)(nil)

// Open loads the board stored in kv
func Open(kv ports.KVStore, opts Options) (*Workspace, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Plan == (domain.SessionPlan{}) {
		opts.Plan = domain.DefaultSessionPlan()
	}

	w := &Workspace{
		KV:     kv,
		Store:  application.NewBoardStore(kv),
		now:    opts.Now,
		logger: opts.Logger,
	}

	repoOpts := []application.RepositoryOption{
		application.WithClock(opts.Now),
		application.WithLogger(opts.Logger),
	}
	if opts.NewID != nil {
		repoOpts = append(repoOpts, application.WithIDGenerator(opts.NewID))
	}
	repo, err := application.NewRepository(w.Store, repoOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	w.Repo = repo

	if _, err := w.Store.EnsureStartDate(opts.Now()); err != nil {
		return nil, fmt.Errorf("failed to record start date: %w", err)
	}
	if opts.SeedDefaults && repo.SeedDefaults() {
		w.logger.Info("seeded empty board with default items")
	}

	w.Timer = application.NewPomodoro(repo, w.Store,
		application.WithSessionPlan(opts.Plan),
		application.WithNotifier(opts.Notifier),
		application.WithTimerClock(opts.Now),
		application.WithTimerLogger(opts.Logger),
	)
	w.Stats = application.NewStatsAggregator(repo, w.Store)
	w.Console = console.NewInterpreter(repo, w.Timer, w, console.WithLogger(opts.Logger))

	return w, nil
}

// FullReset clears items, stats and the start date, restarts the project
// clock, puts the timer back to its initial state and seeds the default
// items
func (w *Workspace) FullReset() error {
	if err := w.Store.Clear(); err != nil {
		return err
	}
	if err := w.Store.SetStartDate(w.now()); err != nil {
		return err
	}
	w.Timer.Restore()
	if err := w.Repo.Reset(); err != nil {
		return err
	}

	w.logger.Info("board reset")
	return nil
}

// Reload picks up items written by another process
func (w *Workspace) Reload() error {
	return w.Repo.Reload()
}

// Tick advances the timer by one second. A running timer writes the item
// list, so the board is reloaded first to keep writes made by another
// process.
func (w *Workspace) Tick() error {
	if !w.Timer.Running() {
		return nil
	}
	if err := w.Repo.Reload(); err != nil {
		return fmt.Errorf("failed to reload board: %w", err)
	}
	w.Timer.Tick()
	return nil
}

// Snapshot computes the statistics as of now
func (w *Workspace) Snapshot() (domain.StatsSnapshot, error) {
	return w.Stats.Snapshot(w.now())
}

// Now returns the workspace clock's current time
func (w *Workspace) Now() time.Time {
	return w.now()
}

// Close releases the underlying store
func (w *Workspace) Close() error {
	return w.KV.Close()
}
