package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/application/console"
)

// ConsoleKeyMap defines key bindings for the console
type ConsoleKeyMap struct {
	Submit     key.Binding
	Complete   key.Binding
	Blur       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

var ConsoleKeys = ConsoleKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to board"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "scroll down"),
	),
}

// ConsoleModel is the command line under the board: a scrolling log and a
// single input
type ConsoleModel struct {
	ViewState
	interp *console.Interpreter
	input  textinput.Model
	log    viewport.Model

	suggestions []string
	suggestIdx  int
	applied     string
}

// NewConsoleModel creates a console over interp
func NewConsoleModel(interp *console.Interpreter) *ConsoleModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Press / to type a command"
	input.CharLimit = 200

	m := &ConsoleModel{
		interp: interp,
		input:  input,
		log:    viewport.New(40, 4),
	}
	m.Refresh()
	return m
}

// SetSize updates the view dimensions
func (m *ConsoleModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.log.Width = max(width-4, 10)
	// panel border plus the input line
	m.log.Height = max(height-3, 1)
	m.input.Width = max(width-8, 10)
	m.Refresh()
}

// Focus puts the cursor in the input
func (m *ConsoleModel) Focus() tea.Cmd {
	m.input.Placeholder = "help, a todo Buy milk, mv todo Buy milk done, start..."
	return m.input.Focus()
}

// Blur releases the input
func (m *ConsoleModel) Blur() {
	m.input.Blur()
	m.input.Placeholder = "Press / to type a command"
	m.resetSuggestions()
}

// Focused reports whether the console has the keyboard
func (m *ConsoleModel) Focused() bool {
	return m.input.Focused()
}

// Refresh re-renders the log and scrolls to the newest line
func (m *ConsoleModel) Refresh() {
	entries := m.interp.Log()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = RenderEntry(e)
	}
	m.log.SetContent(strings.Join(lines, "\n"))
	m.log.GotoBottom()
}

// Init initializes the console
func (m *ConsoleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages while the console is focused
func (m *ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, ConsoleKeys.Blur):
		m.Blur()
		return m, nil

	case key.Matches(keyMsg, ConsoleKeys.Submit):
		line := m.input.Value()
		m.input.Reset()
		m.resetSuggestions()
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		m.interp.Execute(context.Background(), line)
		m.Refresh()
		return m, func() tea.Msg { return BoardChangedMsg{} }

	case key.Matches(keyMsg, ConsoleKeys.Complete):
		m.complete()
		return m, nil

	case key.Matches(keyMsg, ConsoleKeys.ScrollUp):
		m.log.HalfViewUp()
		return m, nil

	case key.Matches(keyMsg, ConsoleKeys.ScrollDown):
		m.log.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// complete replaces the input with the next suggestion. Repeated presses
// cycle through the suggestions for the text typed before the first press.
func (m *ConsoleModel) complete() {
	if m.applied == "" || m.input.Value() != m.applied {
		m.suggestions = m.interp.Suggest(m.input.Value())
		m.suggestIdx = 0
	} else {
		m.suggestIdx = (m.suggestIdx + 1) % len(m.suggestions)
	}
	if len(m.suggestions) == 0 {
		m.applied = ""
		return
	}
	m.applied = m.suggestions[m.suggestIdx]
	m.input.SetValue(m.applied)
	m.input.CursorEnd()
}

func (m *ConsoleModel) resetSuggestions() {
	m.suggestions = nil
	m.suggestIdx = 0
	m.applied = ""
}

// View renders the console panel
func (m *ConsoleModel) View() string {
	border := styles.Muted
	if m.Focused() {
		border = styles.Primary
	}
	width := max(m.Width-4, 10)
	return styles.Panel.BorderForeground(border).Width(width).Render(m.log.View() + "\n" + m.input.View())
}
