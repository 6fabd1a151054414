package mcp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/adapters/sqlite"
	"kanbodoro/internal/application"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/domain"
)

func openSharedWorkspace(t *testing.T, dbPath string) *workspace.Workspace {
	t.Helper()

	kv, err := sqlite.OpenPath(dbPath)
	require.NoError(t, err)
	ws, err := workspace.Open(kv, workspace.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func storedNames(t *testing.T, dbPath string, col domain.Column) []string {
	t.Helper()

	kv, err := sqlite.OpenPath(dbPath)
	require.NoError(t, err)
	defer kv.Close()

	items, err := application.NewBoardStore(kv).LoadItems()
	require.NoError(t, err)
	var names []string
	for _, it := range domain.FilterColumn(items, col) {
		names = append(names, it.Name)
	}
	return names
}

func TestBoard_KeepsWritesFromOtherProcesses(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kanbodoro.db")
	b := NewBoard(openSharedWorkspace(t, dbPath), nil)
	cli := openSharedWorkspace(t, dbPath)

	cli.Repo.Add(domain.ColumnTodo, "from cli", "")
	require.NoError(t, cli.Repo.LastError())

	out, isErr := call(t, addItemHandler(b), map[string]any{"column": "todo", "name": "from mcp"})
	require.False(t, isErr, out)

	assert.ElementsMatch(t, []string{"from cli", "from mcp"}, storedNames(t, dbPath, domain.ColumnTodo))
}

func TestBoard_TickKeepsWritesFromOtherProcesses(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kanbodoro.db")
	b := NewBoard(openSharedWorkspace(t, dbPath), nil)
	cli := openSharedWorkspace(t, dbPath)

	require.NoError(t, b.Do(func(ws *workspace.Workspace) error {
		ws.Timer.Start()
		return nil
	}))

	added := cli.Repo.Add(domain.ColumnInProgress, "from cli", "")
	require.NoError(t, cli.Repo.LastError())

	b.Tick()

	assert.Equal(t, []string{"from cli"}, storedNames(t, dbPath, domain.ColumnInProgress))
	require.NoError(t, cli.Reload())
	got, ok := cli.Repo.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.TimeSpent)
}
