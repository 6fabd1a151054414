package domain

import "time"

// StatsRecord is the persisted stats blob. Only TotalWorkTime is
// authoritative; the remaining fields are kept for compatibility with
// older boards and are never read back.
type StatsRecord struct {
	TotalWorkTime  int        `json:"totalWorkTime"`
	ItemsCompleted int        `json:"itemsCompleted"`
	LongestItem    *string    `json:"longestItem"`
	CurrentStreak  int        `json:"currentStreak"`
	LastWorkDate   *time.Time `json:"lastWorkDate"`
}

// StatsSnapshot is computed on demand from the board and the stored total
type StatsSnapshot struct {
	TotalWorkTime       int        `json:"totalWorkTime" yaml:"total_work_time"`
	ItemsCompleted      int        `json:"itemsCompleted" yaml:"items_completed"`
	LongestItem         *Item      `json:"longestItem" yaml:"longest_item"`
	ProjectDurationDays int        `json:"projectDurationDays" yaml:"project_duration_days"`
	CurrentStreakDays   int        `json:"currentStreakDays" yaml:"current_streak_days"`
	LastWorkDate        *time.Time `json:"lastWorkDate,omitempty" yaml:"last_work_date,omitempty"`
}

// LongestItem returns the item with the most time spent. Ties go to the
// first item in stored order; nil when items is empty.
func LongestItem(items []Item) *Item {
	if len(items) == 0 {
		return nil
	}
	longest := items[0]
	for _, it := range items[1:] {
		if it.TimeSpent > longest.TimeSpent {
			longest = it
		}
	}
	return &longest
}

// DaysBetween returns the number of whole days from start to now
func DaysBetween(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	return int(now.Sub(start) / (24 * time.Hour))
}
