package workspace

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
)

func testOptions(now time.Time) Options {
	n := 0
	return Options{
		Now: func() time.Time { return now },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		SeedDefaults: true,
	}
}

func TestOpen_SeedsEmptyBoard(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	kv := memory.NewKV()

	w, err := Open(kv, testOptions(now))
	require.NoError(t, err)

	for _, col := range domain.Columns {
		items := w.Repo.ByColumn(col)
		require.Len(t, items, 1)
		assert.Equal(t, domain.DefaultItemName, items[0].Name)
	}

	start, ok, err := w.Store.StartDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, now.Equal(start))
}

func TestOpen_KeepsExistingBoardAndStartDate(t *testing.T) {
	first := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	kv := memory.NewKV()

	w, err := Open(kv, testOptions(first))
	require.NoError(t, err)
	w.Repo.Add(domain.ColumnTodo, "keep me", "")

	later := first.AddDate(0, 0, 2)
	w2, err := Open(kv, testOptions(later))
	require.NoError(t, err)

	assert.Len(t, w2.Repo.Items(), 4)
	snap, err := w2.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 2, snap.ProjectDurationDays)
}

func TestFullReset(t *testing.T) {
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	now := start
	opts := testOptions(start)
	opts.Now = func() time.Time { return now }
	kv := memory.NewKV()

	w, err := Open(kv, opts)
	require.NoError(t, err)
	w.Repo.Add(domain.ColumnDone, "shipped", "")
	_, err = w.Store.AddWorkTime(1500, start)
	require.NoError(t, err)
	w.Timer.Skip()
	w.Timer.Start()

	now = start.AddDate(0, 0, 10)
	require.NoError(t, w.FullReset())

	items := w.Repo.Items()
	require.Len(t, items, 3)
	for i, col := range domain.Columns {
		assert.Equal(t, col, items[i].Column)
		assert.Equal(t, domain.DefaultItemName, items[i].Name)
	}

	rec, err := w.Store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TotalWorkTime)

	startDate, ok, err := w.Store.StartDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, now.Equal(startDate))

	state := w.Timer.State()
	assert.Equal(t, domain.SessionWork, state.Session)
	assert.False(t, state.Running)
	assert.Equal(t, 1500, state.Remaining)

	stored, err := w.Store.LoadItems()
	require.NoError(t, err)
	assert.Equal(t, items, stored)
}

func TestOpen_CustomPlan(t *testing.T) {
	opts := testOptions(time.Now())
	opts.Plan = domain.SessionPlan{
		Work:           50 * time.Minute,
		ShortBreak:     10 * time.Minute,
		LongBreak:      20 * time.Minute,
		LongBreakEvery: 3,
	}

	w, err := Open(memory.NewKV(), opts)
	require.NoError(t, err)
	assert.Equal(t, 3000, w.Timer.State().Total)
}

func TestWorkspace_ReloadSeesOtherWriter(t *testing.T) {
	kv := memory.NewKV()
	w, err := Open(kv, testOptions(time.Now()))
	require.NoError(t, err)

	other := application.NewBoardStore(kv)
	items, err := other.LoadItems()
	require.NoError(t, err)
	items = append(items, domain.Item{ID: "ext", Name: "external", Column: domain.ColumnTodo})
	require.NoError(t, other.SaveItems(items))

	require.NoError(t, w.Reload())
	_, ok := w.Repo.Find(domain.ColumnTodo, "external")
	assert.True(t, ok)
}

func TestWorkspace_TickReloadsBeforeCrediting(t *testing.T) {
	kv := memory.NewKV()
	w, err := Open(kv, testOptions(time.Now()))
	require.NoError(t, err)

	// paused: no reload, no write
	other, err := Open(kv, Options{})
	require.NoError(t, err)
	other.Repo.Add(domain.ColumnTodo, "external", "")
	require.NoError(t, w.Tick())
	_, ok := w.Repo.Find(domain.ColumnTodo, "external")
	assert.False(t, ok)

	w.Timer.Start()
	require.NoError(t, w.Tick())

	_, ok = w.Repo.Find(domain.ColumnTodo, "external")
	assert.True(t, ok)
	assert.Equal(t, 1499, w.Timer.State().Remaining)

	stored, err := w.Store.LoadItems()
	require.NoError(t, err)
	assert.Equal(t, w.Repo.Items(), stored)
}
