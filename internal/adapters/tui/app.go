package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/adapters/tui/views"
	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/application/console"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewAdd
	ViewHelp
	ViewStats
	ViewConfirmReset
)

// Layout heights of the fixed panels
const (
	timerHeight   = 5
	consoleHeight = 9
	statusHeight  = 1
)

type tickMsg time.Time

type reloadMsg struct{}

type editorFinishedMsg struct {
	itemID string
	path   string
	err    error
}

// App is the main TUI application model. Its Update loop is the only code
// that touches the workspace.
type App struct {
	ws      *workspace.Workspace
	editor  ports.TextEditor
	changes <-chan struct{}
	logger  *slog.Logger

	state   ViewState
	board   *views.BoardModel
	console *views.ConsoleModel
	timer   *views.TimerPanel
	add     *views.AddModel
	help    *views.HelpModel
	stats   *views.StatsModel
	confirm *views.ConfirmResetModel

	status    string
	statusErr bool
	notified  bool

	width  int
	height int
}

// NewApp creates a new TUI application. changes may be nil; when set, each
// signal reloads the board from the store.
func NewApp(ws *workspace.Workspace, ed ports.TextEditor, changes <-chan struct{}, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		ws:      ws,
		editor:  ed,
		changes: changes,
		logger:  logger,
		state:   ViewBoard,
		board:   views.NewBoardModel(ws.Repo, ws.Now),
		console: views.NewConsoleModel(ws.Console),
		timer:   views.NewTimerPanel(),
		add:     views.NewAddModel(ws.Repo),
		help:    views.NewHelpModel(ws.Console),
		stats:   views.NewStatsModel(ws.Stats, ws.Now),
		confirm: views.NewConfirmResetModel(),
	}

	ws.Timer.SetNotifier(ports.NotifierFunc(func(e domain.SessionEvent) {
		ws.Console.Note(e.Message, console.LevelSuccess)
		a.notified = true
	}))
	if len(ws.Console.Log()) == 0 {
		ws.Console.Note(console.Welcome, console.LevelPlain)
	}
	a.console.Refresh()

	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(tick(), a.waitForChange())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks on the store watcher and reports one change
func (a *App) waitForChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)
		return a, nil

	case tickMsg:
		if a.ws.Timer.Running() {
			if err := a.ws.Tick(); err != nil {
				a.logger.Error("timer tick failed", slog.Any("error", err))
				a.setStatus(err.Error(), true)
			}
			a.board.Refresh()
			if a.notified {
				a.notified = false
				a.console.Refresh()
				return a, tea.Batch(tick(), a.persistenceStatus())
			}
		}
		return a, tick()

	case reloadMsg:
		if err := a.ws.Reload(); err != nil {
			a.logger.Error("failed to reload board", slog.Any("error", err))
			a.setStatus("Reload failed: "+err.Error(), true)
		}
		a.board.Refresh()
		return a, a.waitForChange()

	case views.StatusMsg:
		a.setStatus(msg.Text, msg.Err)
		return a, nil

	case views.BoardChangedMsg:
		a.board.Refresh()
		a.console.Refresh()
		if a.ws.Console.Pending() {
			a.state = ViewConfirmReset
		}
		return a, a.persistenceStatus()

	// View switching messages
	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToStatsMsg:
		a.stats.Load()
		a.state = ViewStats
		return a, nil

	case views.SwitchToAddMsg:
		a.add.SetColumn(msg.Column)
		a.state = ViewAdd
		return a, a.add.Init()

	case views.FocusConsoleMsg:
		return a, a.console.Focus()

	case views.ResetAnswerMsg:
		a.ws.Console.Confirm(context.Background(), msg.Yes)
		a.state = ViewBoard
		a.board.Refresh()
		a.console.Refresh()
		if msg.Yes {
			a.setStatus(commands.FullResetDone, false)
		} else {
			a.setStatus(commands.FullResetCancelled, false)
		}
		return a, nil

	case views.EditDescriptionMsg:
		return a, a.openEditor(msg.Item)

	case editorFinishedMsg:
		return a, a.finishEdit(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.setStatus("", false)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		if a.console.Focused() {
			_, cmd = a.console.Update(msg)
		} else {
			_, cmd = a.board.Update(msg)
		}
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewStats:
		_, cmd = a.stats.Update(msg)
	case ViewConfirmReset:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height

	boardHeight := max(height-timerHeight-consoleHeight-statusHeight, 6)
	a.timer.SetSize(width, timerHeight)
	a.board.SetSize(width, boardHeight)
	a.console.SetSize(width, consoleHeight)
	a.add.SetSize(width, height)
	a.help.SetSize(width, height)
	a.stats.SetSize(width, height)
	a.confirm.SetSize(width, height)
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

// persistenceStatus reports a failed write-through in the status line
func (a *App) persistenceStatus() tea.Cmd {
	if err := a.ws.Repo.LastError(); err != nil {
		return views.Status("Failed to save board: "+err.Error(), true)
	}
	return nil
}

func (a *App) openEditor(item domain.Item) tea.Cmd {
	if a.editor == nil {
		return views.Status("No editor available", true)
	}

	path, err := a.editor.Draft(item.Name, item.Description)
	if err != nil {
		return views.Status(err.Error(), true)
	}
	cmd, err := a.editor.Command(path)
	if err != nil {
		_, _ = a.editor.Collect(path)
		return views.Status(err.Error(), true)
	}

	id := item.ID
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{itemID: id, path: path, err: err}
	})
}

func (a *App) finishEdit(msg editorFinishedMsg) tea.Cmd {
	text, err := a.editor.Collect(msg.path)
	if msg.err != nil {
		a.logger.Warn("editor exited with error", slog.Any("error", msg.err))
		return views.Status("Editor failed: "+msg.err.Error(), true)
	}
	if err != nil {
		return views.Status(err.Error(), true)
	}

	result, err := commands.NewEditDescriptionCommand(a.ws.Repo, msg.itemID, text).Execute(context.Background())
	if err != nil {
		return views.Status(err.Error(), true)
	}
	a.board.Refresh()
	return tea.Batch(views.Status(result.Message, false), a.persistenceStatus())
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return styles.App.Render(a.add.View())
	case ViewHelp:
		return a.help.View()
	case ViewStats:
		return a.stats.View()
	case ViewConfirmReset:
		return a.confirm.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.timer.View(a.ws.Timer.State()),
		a.board.View(),
		a.console.View(),
		a.statusLine(),
	)
}

func (a *App) statusLine() string {
	if a.status != "" {
		return views.RenderMessage(a.status, a.statusErr)
	}
	if a.board.Grabbing() {
		return views.RenderHelpLine(views.BoardKeys.Left, views.BoardKeys.Right, views.BoardKeys.Grab, views.BoardKeys.Cancel)
	}
	if a.console.Focused() {
		return views.RenderHelpLine(views.ConsoleKeys.Submit, views.ConsoleKeys.Complete, views.ConsoleKeys.Blur)
	}
	return views.RenderHelpLine(
		views.BoardKeys.Grab,
		views.BoardKeys.New,
		views.BoardKeys.Edit,
		views.BoardKeys.Copy,
		views.BoardKeys.Stats,
		views.BoardKeys.Console,
		views.BoardKeys.Help,
		views.BoardKeys.Quit,
	)
}
