package commands

import (
	"context"
	"fmt"

	"kanbodoro/internal/ports"
)

// Full reset prompts and outcomes
const (
	FullResetPrompt    = "Are you sure you want to completely reset the board? This will delete all items, stats, and time tracking data. This cannot be undone."
	FullResetDone      = "Board completely reset to default state"
	FullResetCancelled = "Full reset cancelled"
)

// FullResetResult contains the outcome of a full reset
type FullResetResult struct {
	Reset   bool
	Message string
}

// FullResetCommand wipes items, stats and the start date, then seeds the
// default items. Nothing happens unless Confirmed is set.
type FullResetCommand struct {
	resetter  ports.Resetter
	Confirmed bool
}

// NewFullResetCommand creates a new FullResetCommand
func NewFullResetCommand(resetter ports.Resetter, confirmed bool) *FullResetCommand {
	return &FullResetCommand{
		resetter:  resetter,
		Confirmed: confirmed,
	}
}

// Execute runs the full reset
func (c *FullResetCommand) Execute(ctx context.Context) (*FullResetResult, error) {
	if !c.Confirmed {
		return &FullResetResult{Message: FullResetCancelled}, nil
	}

	if err := c.resetter.FullReset(); err != nil {
		return nil, fmt.Errorf("failed to reset board: %w", err)
	}

	return &FullResetResult{
		Reset:   true,
		Message: FullResetDone,
	}, nil
}
