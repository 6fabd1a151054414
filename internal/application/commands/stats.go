package commands

import (
	"context"
	"fmt"
	"time"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// StatsResult contains a snapshot and its display lines
type StatsResult struct {
	Snapshot domain.StatsSnapshot
	Lines    [][2]string
}

// ShowStatsCommand computes the board statistics
type ShowStatsCommand struct {
	stats ports.StatsSource
	Now   time.Time
}

// NewShowStatsCommand creates a new ShowStatsCommand
func NewShowStatsCommand(stats ports.StatsSource, now time.Time) *ShowStatsCommand {
	return &ShowStatsCommand{
		stats: stats,
		Now:   now,
	}
}

// Execute runs the stats command
func (c *ShowStatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	snap, err := c.stats.Snapshot(c.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &StatsResult{
		Snapshot: snap,
		Lines:    application.StatsLines(snap),
	}, nil
}
