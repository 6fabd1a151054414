package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/application/commands"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmResetModel asks whether to wipe the board. It answers with a
// ResetAnswerMsg and never touches the board itself.
type ConfirmResetModel struct {
	ViewState
	Keys ConfirmKeyMap
}

// NewConfirmResetModel creates the full reset prompt
func NewConfirmResetModel() *ConfirmResetModel {
	return &ConfirmResetModel{Keys: DefaultConfirmKeys}
}

// Init initializes the prompt
func (m *ConfirmResetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the prompt
func (m *ConfirmResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Confirm):
		return m, func() tea.Msg { return ResetAnswerMsg{Yes: true} }
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return ResetAnswerMsg{Yes: false} }
	}
	return m, nil
}

// View renders the prompt
func (m *ConfirmResetModel) View() string {
	width := min(max(m.Width-12, 30), 70)
	question := styles.WarnMsg.Width(width).Render(commands.FullResetPrompt)
	return RenderOverlay(NewViewBuilder().
		Title("Full Reset").
		Line(question).
		BlankLine().
		Line(RenderConfirmPrompt()).
		String(), m.Width, m.Height)
}

// RenderConfirmPrompt renders the standard y/n hint
func RenderConfirmPrompt() string {
	var b strings.Builder
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
