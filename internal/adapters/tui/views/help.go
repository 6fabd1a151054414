package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/application/console"
	"kanbodoro/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	interp *console.Interpreter
}

// NewHelpModel creates a new help view model. The console commands are
// listed from interp.
func NewHelpModel(interp *console.Interpreter) *HelpModel {
	return &HelpModel{interp: interp}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToBoardMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("kanbodoro Help"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Board"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / l / ← / →", "Change column"))
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("space", "Grab item, then h/l and space to drop"))
	b.WriteString(helpLine("n", "New item in this column"))
	b.WriteString(helpLine("e", "Edit description in $EDITOR"))
	b.WriteString(helpLine("y", "Copy item to clipboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Focus console (esc to leave, tab to complete)"))
	b.WriteString(helpLine("s", "Statistics"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Console commands"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  " + strings.Join(m.interp.Commands(), ", ")))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Columns: " + domain.ColumnNames()))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return RenderOverlay(b.String(), m.Width, m.Height)
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
