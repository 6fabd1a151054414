package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/domain"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (*Repository, *BoardStore) {
	t.Helper()

	store := NewBoardStore(memory.NewKV())
	n := 0
	repo, err := NewRepository(store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("item-%d", n)
		}),
	)
	require.NoError(t, err)
	return repo, store
}

// assertWriteThrough checks that the stored list equals the in-memory one
func assertWriteThrough(t *testing.T, repo *Repository, store *BoardStore) {
	t.Helper()

	stored, err := store.LoadItems()
	require.NoError(t, err)
	assert.Equal(t, repo.Items(), stored)
}

func TestRepository_AddThenByColumn(t *testing.T) {
	repo, store := newTestRepository(t)

	item := repo.Add(domain.ColumnTodo, "Buy milk", "")

	todo := repo.ByColumn(domain.ColumnTodo)
	require.Len(t, todo, 1)
	assert.Equal(t, "Buy milk", todo[0].Name)
	assert.Equal(t, 0, todo[0].TimeSpent)
	assert.Equal(t, item.ID, todo[0].ID)
	assert.Equal(t, fixedNow, todo[0].CreatedAt)
	assertWriteThrough(t, repo, store)
}

func TestRepository_MoveRelocatesItem(t *testing.T) {
	repo, store := newTestRepository(t)
	repo.Add(domain.ColumnTodo, "Buy milk", "")

	require.True(t, repo.Move(domain.ColumnTodo, "Buy milk", domain.ColumnDone))

	assert.Empty(t, repo.ByColumn(domain.ColumnTodo))
	done := repo.ByColumn(domain.ColumnDone)
	require.Len(t, done, 1)
	assert.Equal(t, "Buy milk", done[0].Name)
	assertWriteThrough(t, repo, store)
}

func TestRepository_MoveMissingMutatesNothing(t *testing.T) {
	repo, store := newTestRepository(t)
	repo.Add(domain.ColumnTodo, "Buy milk", "")
	before := repo.Items()

	assert.False(t, repo.Move(domain.ColumnTodo, "Buy bread", domain.ColumnDone))
	assert.False(t, repo.Move(domain.ColumnInProgress, "Buy milk", domain.ColumnDone))

	assert.Equal(t, before, repo.Items())
	assertWriteThrough(t, repo, store)
}

func TestRepository_LookupIsCaseInsensitiveFirstMatch(t *testing.T) {
	repo, _ := newTestRepository(t)
	first := repo.Add(domain.ColumnTodo, "Write Report", "first")
	repo.Add(domain.ColumnTodo, "write report", "second")

	found, ok := repo.Find(domain.ColumnTodo, "WRITE REPORT")
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID)

	require.True(t, repo.Remove(domain.ColumnTodo, "write report"))
	remaining := repo.ByColumn(domain.ColumnTodo)
	require.Len(t, remaining, 1)
	assert.Equal(t, "second", remaining[0].Description)
}

func TestRepository_WriteThroughAfterEveryOperation(t *testing.T) {
	repo, store := newTestRepository(t)

	ops := []struct {
		name string
		run  func() bool
	}{
		{"add a", func() bool { repo.Add(domain.ColumnTodo, "a", ""); return true }},
		{"add b", func() bool { repo.Add(domain.ColumnInProgress, "b", "desc"); return true }},
		{"add c", func() bool { repo.Add(domain.ColumnDone, "c", ""); return true }},
		{"move a", func() bool { return repo.Move(domain.ColumnTodo, "A", domain.ColumnInProgress) }},
		{"rename b", func() bool { return repo.Rename(domain.ColumnInProgress, "b", "bee") }},
		{"describe bee", func() bool { return repo.UpdateDescription(domain.ColumnInProgress, "bee", "buzz") }},
		{"remove c", func() bool { return repo.Remove(domain.ColumnDone, "c") }},
		{"remove missing", func() bool { return !repo.Remove(domain.ColumnDone, "c") }},
		{"increment", func() bool { repo.IncrementTime("item-1", 5); return true }},
		{"move by id", func() bool { return repo.MoveByID("item-2", domain.ColumnDone) }},
	}

	for _, op := range ops {
		require.True(t, op.run(), op.name)
		assertWriteThrough(t, repo, store)
	}

	items := repo.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].TimeSpent)
	assert.Equal(t, "bee", items[1].Name)
	assert.Equal(t, "buzz", items[1].Description)
	assert.Equal(t, domain.ColumnDone, items[1].Column)
}

func TestRepository_IncrementUnknownIDIsNoop(t *testing.T) {
	repo, _ := newTestRepository(t)
	repo.Add(domain.ColumnTodo, "a", "")
	before := repo.Items()

	repo.IncrementTime("nope", 10)

	assert.Equal(t, before, repo.Items())
}

func TestRepository_MoveByIDSameColumn(t *testing.T) {
	repo, _ := newTestRepository(t)
	item := repo.Add(domain.ColumnTodo, "a", "")

	assert.False(t, repo.MoveByID(item.ID, domain.ColumnTodo))
	assert.False(t, repo.MoveByID("missing", domain.ColumnDone))
	assert.True(t, repo.MoveByID(item.ID, domain.ColumnDone))
}

func TestRepository_SeedDefaults(t *testing.T) {
	repo, store := newTestRepository(t)

	require.True(t, repo.SeedDefaults())
	for _, col := range domain.Columns {
		items := repo.ByColumn(col)
		require.Len(t, items, 1, col)
		assert.Equal(t, domain.DefaultItemName, items[0].Name)
	}
	assert.False(t, repo.SeedDefaults(), "seeding a non-empty board")
	assertWriteThrough(t, repo, store)
}

func TestRepository_ReloadPicksUpExternalWrites(t *testing.T) {
	repo, store := newTestRepository(t)
	repo.Add(domain.ColumnTodo, "a", "")

	other, err := NewRepository(store)
	require.NoError(t, err)
	other.Add(domain.ColumnDone, "from elsewhere", "")

	require.NoError(t, repo.Reload())
	assert.Len(t, repo.Items(), 2)
	_, ok := repo.Find(domain.ColumnDone, "from elsewhere")
	assert.True(t, ok)
}

func TestRepository_LoadsLegacyColumns(t *testing.T) {
	kv := memory.NewKV()
	require.NoError(t, kv.Set(KeyItems, `[{"id":"x","name":"old","description":"","column":"in-prog","timeSpent":42,"createdAt":"2025-01-01T00:00:00.000Z"}]`))

	repo, err := NewRepository(NewBoardStore(kv))
	require.NoError(t, err)

	items := repo.ByColumn(domain.ColumnInProgress)
	require.Len(t, items, 1)
	assert.Equal(t, 42, items[0].TimeSpent)
}

func TestRepository_ItemsReturnsCopy(t *testing.T) {
	repo, _ := newTestRepository(t)
	repo.Add(domain.ColumnTodo, "a", "")

	items := repo.Items()
	items[0].Name = "mutated"

	found, ok := repo.Find(domain.ColumnTodo, "a")
	require.True(t, ok)
	assert.Equal(t, "a", found.Name)
}
