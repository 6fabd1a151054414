package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kanbodoro/internal/application/workspace"
)

// Board serializes access to a Workspace. Tool handlers and timer ticks
// run one at a time under its lock. The board is reloaded before each
// handler so writes from the CLI or the TUI are not overwritten.
type Board struct {
	ws     *workspace.Workspace
	logger *slog.Logger

	mu sync.Mutex
}

// NewBoard wraps ws
func NewBoard(ws *workspace.Workspace, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{ws: ws, logger: logger}
}

// Do runs fn with exclusive access to the workspace
func (b *Board) Do(fn func(ws *workspace.Workspace) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.ws.Reload(); err != nil {
		b.logger.Error("failed to reload board", slog.Any("error", err))
		return fmt.Errorf("failed to reload board: %w", err)
	}
	return fn(b.ws)
}

// Tick advances the timer by one second if it is running
func (b *Board) Tick() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.ws.Tick(); err != nil {
		b.logger.Error("timer tick failed", slog.Any("error", err))
	}
}

// RunTicks calls Tick for every value received on ticks until ctx is done
// or ticks is closed
func (b *Board) RunTicks(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			b.Tick()
		}
	}
}
