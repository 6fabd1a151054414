package application

import (
	"fmt"
	"time"

	"kanbodoro/internal/domain"
)

// StatsAggregator derives board statistics at read time. Only the total
// work time is stored; everything else is recomputed from the items and
// the project start date on every call.
type StatsAggregator struct {
	repo  *Repository
	store *BoardStore
}

// NewStatsAggregator creates a StatsAggregator
func NewStatsAggregator(repo *Repository, store *BoardStore) *StatsAggregator {
	return &StatsAggregator{repo: repo, store: store}
}

// Snapshot computes the statistics as of now
func (a *StatsAggregator) Snapshot(now time.Time) (domain.StatsSnapshot, error) {
	var snap domain.StatsSnapshot

	rec, err := a.store.LoadStats()
	if err != nil {
		return snap, err
	}
	start, ok, err := a.store.StartDate()
	if err != nil {
		return snap, err
	}
	if !ok {
		start = now
	}

	items := a.repo.Items()
	days := domain.DaysBetween(start, now)

	snap.TotalWorkTime = rec.TotalWorkTime
	snap.ItemsCompleted = len(domain.FilterColumn(items, domain.ColumnDone))
	snap.LongestItem = domain.LongestItem(items)
	snap.ProjectDurationDays = days
	// Streak is not tracked separately; it mirrors the project age
	snap.CurrentStreakDays = days
	snap.LastWorkDate = rec.LastWorkDate
	return snap, nil
}

// StatsLines renders a snapshot as label/value pairs for display
func StatsLines(s domain.StatsSnapshot) [][2]string {
	longest := "None"
	if s.LongestItem != nil {
		longest = fmt.Sprintf("%s (%s)", s.LongestItem.Name, domain.FormatDuration(s.LongestItem.TimeSpent))
	}
	return [][2]string{
		{"Total work time", domain.FormatDuration(s.TotalWorkTime)},
		{"Items completed", fmt.Sprintf("%d", s.ItemsCompleted)},
		{"Longest item", longest},
		{"Project duration", fmt.Sprintf("%d days", s.ProjectDurationDays)},
		{"Current streak", fmt.Sprintf("%d days", s.CurrentStreakDays)},
	}
}
