package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// AddKeyMap defines the column picker keys of the add form
type AddKeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
}

var AddKeys = AddKeyMap{
	PrevColumn: key.NewBinding(
		key.WithKeys("ctrl+h", "ctrl+left"),
		key.WithHelp("ctrl+←", "previous column"),
	),
	NextColumn: key.NewBinding(
		key.WithKeys("ctrl+l", "ctrl+right"),
		key.WithHelp("ctrl+→", "next column"),
	),
}

const (
	addFieldName = iota
	addFieldDescription
)

// AddModel is the form for creating an item
type AddModel struct {
	ViewState
	repo   ports.BoardRepository
	column int
	form   *InputForm
}

// NewAddModel creates a new add form
func NewAddModel(repo ports.BoardRepository) *AddModel {
	return &AddModel{
		repo: repo,
		form: NewInputForm(
			NewInputField("Name", "What needs doing?", 100),
			NewInputField("Description", "Optional details", 500),
		),
	}
}

// SetColumn clears the form and preselects column
func (m *AddModel) SetColumn(col domain.Column) {
	m.ClearMessage()
	m.form.Reset()
	m.column = 0
	for i, c := range domain.Columns {
		if c == col {
			m.column = i
		}
	}
}

// Init initializes the add form
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the add form
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(keyMsg, AddKeys.PrevColumn):
			m.column = (m.column + len(domain.Columns) - 1) % len(domain.Columns)
			return m, nil

		case key.Matches(keyMsg, AddKeys.NextColumn):
			m.column = (m.column + 1) % len(domain.Columns)
			return m, nil

		case key.Matches(keyMsg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *AddModel) submit() tea.Cmd {
	col := domain.Columns[m.column]
	cmd := commands.NewAddItemCommand(m.repo, col.String(), m.form.Value(addFieldName), m.form.Value(addFieldDescription))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return tea.Batch(
		Status(result.Message, false),
		func() tea.Msg { return BoardChangedMsg{} },
		func() tea.Msg { return SwitchToBoardMsg{} },
	)
}

// View renders the add form
func (m *AddModel) View() string {
	tabs := make([]string, len(domain.Columns))
	for i, col := range domain.Columns {
		style := styles.MutedText
		if i == m.column {
			style = styles.ColumnHeader.Foreground(styles.ColumnColor(col)).Underline(true)
		}
		tabs[i] = style.Render(col.Label())
	}

	return NewViewBuilder().
		Title("New Item").
		Line(styles.InputLabel.Render("Column") + "  " + strings.Join(tabs, "  ")).
		BlankLine().
		Line(m.form.RenderField(addFieldName)).
		Line(m.form.RenderField(addFieldDescription)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(m.form.RenderHelp("add") + "  " + RenderKeyHelp(AddKeys.NextColumn)).
		String()
}

