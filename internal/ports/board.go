package ports

import (
	"time"

	"kanbodoro/internal/domain"
)

// BoardRepository defines the item operations the console and other
// surfaces dispatch to. Lookups by (column, name) are case-insensitive and
// act on the first match.
type BoardRepository interface {
	// Create and remove
	Add(column domain.Column, name, description string) domain.Item
	Remove(column domain.Column, name string) bool

	// Update operations
	Move(from domain.Column, name string, to domain.Column) bool
	Rename(column domain.Column, oldName, newName string) bool
	UpdateDescription(column domain.Column, name, description string) bool

	// By-id operations used by the board view
	MoveByID(id string, to domain.Column) bool
	UpdateDescriptionByID(id, description string) bool

	// Queries
	ByColumn(column domain.Column) []domain.Item
	Items() []domain.Item
	Find(column domain.Column, name string) (domain.Item, bool)
}

// Timer is the subset of the pomodoro timer driven by console commands
type Timer interface {
	Start() bool
	Pause()
	Skip()
	Reset()
	State() domain.TimerState
}

// Resetter wipes the board back to its first-run state
type Resetter interface {
	FullReset() error
}

// StatsSource computes a statistics snapshot
type StatsSource interface {
	Snapshot(now time.Time) (domain.StatsSnapshot, error)
}
