package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/adapters/tui/views"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/domain"
)

func newTestApp(t *testing.T) (*App, *workspace.Workspace) {
	t.Helper()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ws, err := workspace.Open(memory.NewKV(), workspace.Options{
		Now:          func() time.Time { return now },
		SeedDefaults: true,
	})
	require.NoError(t, err)

	a := NewApp(ws, nil, nil, nil)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, ws
}

func typeLine(a *App, line string) tea.Cmd {
	for _, r := range line {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

// follow runs cmd and feeds its message back into the app
func follow(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	a.Update(cmd())
}

func TestApp_ShowsWelcomeAndBoard(t *testing.T) {
	a, _ := newTestApp(t)

	view := a.View()
	assert.Contains(t, view, "Press / to focus here")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, domain.DefaultItemName)
}

func TestApp_TickAdvancesRunningTimer(t *testing.T) {
	a, ws := newTestApp(t)

	a.Update(tickMsg(time.Now()))
	assert.Equal(t, 1500, ws.Timer.State().Remaining, "paused timer ignores ticks")

	a.Update(views.FocusConsoleMsg{})
	follow(t, a, typeLine(a, "start"))
	a.Update(tickMsg(time.Now()))
	a.Update(tickMsg(time.Now()))

	assert.Equal(t, 1498, ws.Timer.State().Remaining)
	inProgress := ws.Repo.ByColumn(domain.ColumnInProgress)
	require.Len(t, inProgress, 1)
	assert.Equal(t, 2, inProgress[0].TimeSpent)
}

func TestApp_FullResetConfirmation(t *testing.T) {
	a, ws := newTestApp(t)
	ws.Repo.Add(domain.ColumnTodo, "extra", "")

	a.Update(views.FocusConsoleMsg{})
	follow(t, a, typeLine(a, "fullreset"))
	require.Equal(t, ViewConfirmReset, a.state)
	assert.Contains(t, a.View(), "Full Reset")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	follow(t, a, cmd)

	assert.Equal(t, ViewBoard, a.state)
	assert.False(t, ws.Console.Pending())
	assert.Len(t, ws.Repo.Items(), len(domain.Columns))
	assert.True(t, strings.Contains(a.View(), "Board completely reset to default state"))
}

func TestApp_FullResetCancelled(t *testing.T) {
	a, ws := newTestApp(t)
	ws.Repo.Add(domain.ColumnTodo, "extra", "")

	a.Update(views.FocusConsoleMsg{})
	follow(t, a, typeLine(a, "fullreset"))
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	follow(t, a, cmd)

	assert.Equal(t, ViewBoard, a.state)
	assert.Len(t, ws.Repo.Items(), len(domain.Columns)+1)
}

func TestApp_AddFormCreatesItem(t *testing.T) {
	a, ws := newTestApp(t)

	a.Update(views.SwitchToAddMsg{Column: domain.ColumnDone})
	require.Equal(t, ViewAdd, a.state)

	for _, r := range "Ship it" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := ws.Repo.Find(domain.ColumnDone, "Ship it")
	assert.True(t, ok)
}

func TestApp_ReloadPicksUpExternalWrite(t *testing.T) {
	a, ws := newTestApp(t)

	other, err := workspace.Open(ws.KV, workspace.Options{})
	require.NoError(t, err)
	other.Repo.Add(domain.ColumnTodo, "from the cli", "")

	a.Update(reloadMsg{})
	assert.Contains(t, a.View(), "from the cli")
}

func TestApp_TickKeepsExternalWriteBeforeReload(t *testing.T) {
	a, ws := newTestApp(t)
	a.Update(views.FocusConsoleMsg{})
	follow(t, a, typeLine(a, "start"))

	other, err := workspace.Open(ws.KV, workspace.Options{})
	require.NoError(t, err)
	other.Repo.Add(domain.ColumnTodo, "from the cli", "")

	a.Update(tickMsg(time.Now()))

	stored, err := ws.Store.LoadItems()
	require.NoError(t, err)
	var names []string
	for _, it := range domain.FilterColumn(stored, domain.ColumnTodo) {
		names = append(names, it.Name)
	}
	assert.Contains(t, names, "from the cli")
	assert.Contains(t, a.View(), "from the cli")
}

func TestApp_StatsOverlay(t *testing.T) {
	a, _ := newTestApp(t)

	a.Update(views.SwitchToStatsMsg{})
	require.Equal(t, ViewStats, a.state)
	view := a.View()
	assert.Contains(t, view, "Total work time")
	assert.Contains(t, view, "Items completed")
}
