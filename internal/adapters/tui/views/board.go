package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Grab    key.Binding
	Cancel  key.Binding
	New     key.Binding
	Edit    key.Binding
	Copy    key.Binding
	Stats   key.Binding
	Console key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "grab/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit description"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	Console: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "console"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// cardHeight is the number of lines one card takes
const cardHeight = 2

type grab struct {
	itemID string
	name   string
	from   domain.Column
}

// BoardModel is the model for the three-column board
type BoardModel struct {
	ViewState
	repo ports.BoardRepository
	now  func() time.Time

	focus   int
	items   [][]domain.Item
	scroll  []*Scroller
	grabbed *grab
}

// NewBoardModel creates a new board model
func NewBoardModel(repo ports.BoardRepository, now func() time.Time) *BoardModel {
	m := &BoardModel{
		repo:   repo,
		now:    now,
		items:  make([][]domain.Item, len(domain.Columns)),
		scroll: make([]*Scroller, len(domain.Columns)),
	}
	for i := range m.scroll {
		m.scroll[i] = NewScroller(1)
	}
	m.Refresh()
	return m
}

// Init initializes the board
func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and the number of visible cards
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// border, header and the two overflow markers
	rows := (height - 6) / cardHeight
	for _, s := range m.scroll {
		s.SetSize(rows)
	}
}

// Refresh re-reads every column from the repository. A grabbed item that
// no longer exists is released.
func (m *BoardModel) Refresh() {
	found := m.grabbed == nil
	for i, col := range domain.Columns {
		m.items[i] = m.repo.ByColumn(col)
		m.scroll[i].SetTotal(len(m.items[i]))
		if !found {
			for _, it := range m.items[i] {
				if it.ID == m.grabbed.itemID {
					found = true
				}
			}
		}
	}
	if !found {
		m.grabbed = nil
	}
}

// Focus returns the focused column
func (m *BoardModel) Focus() domain.Column {
	return domain.Columns[m.focus]
}

// Grabbing reports whether an item is being carried
func (m *BoardModel) Grabbing() bool {
	return m.grabbed != nil
}

// Selected returns the item under the cursor
func (m *BoardModel) Selected() (domain.Item, bool) {
	items := m.items[m.focus]
	if len(items) == 0 {
		return domain.Item{}, false
	}
	return items[m.scroll[m.focus].Cursor()], true
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, BoardKeys.Quit) {
		return m, tea.Quit
	}

	if m.grabbed != nil {
		switch {
		case key.Matches(keyMsg, BoardKeys.Left):
			m.moveFocus(-1)
		case key.Matches(keyMsg, BoardKeys.Right):
			m.moveFocus(1)
		case key.Matches(keyMsg, BoardKeys.Grab):
			return m, m.drop()
		case key.Matches(keyMsg, BoardKeys.Cancel):
			m.grabbed = nil
			return m, Status("Move cancelled", false)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, BoardKeys.Up):
		m.scroll[m.focus].Up()
	case key.Matches(keyMsg, BoardKeys.Down):
		m.scroll[m.focus].Down()
	case key.Matches(keyMsg, BoardKeys.Left):
		m.moveFocus(-1)
	case key.Matches(keyMsg, BoardKeys.Right):
		m.moveFocus(1)

	case key.Matches(keyMsg, BoardKeys.Grab):
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.grabbed = &grab{itemID: item.ID, name: item.Name, from: item.Column}
		return m, Status(fmt.Sprintf("Grabbed '%s': h/l to choose a column, space to drop", item.Name), false)

	case key.Matches(keyMsg, BoardKeys.New):
		col := m.Focus()
		return m, func() tea.Msg { return SwitchToAddMsg{Column: col} }

	case key.Matches(keyMsg, BoardKeys.Edit):
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditDescriptionMsg{Item: item} }

	case key.Matches(keyMsg, BoardKeys.Copy):
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(CardText(item)); err != nil {
			return m, Status("Copy failed: "+err.Error(), true)
		}
		return m, Status(fmt.Sprintf("Copied '%s' to clipboard", item.Name), false)

	case key.Matches(keyMsg, BoardKeys.Stats):
		return m, func() tea.Msg { return SwitchToStatsMsg{} }
	case key.Matches(keyMsg, BoardKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(keyMsg, BoardKeys.Console):
		return m, func() tea.Msg { return FocusConsoleMsg{} }
	}

	return m, nil
}

func (m *BoardModel) moveFocus(delta int) {
	next := m.focus + delta
	if next < 0 || next >= len(domain.Columns) {
		return
	}
	m.focus = next
}

// drop moves the grabbed item to the focused column and puts the cursor
// on it
func (m *BoardModel) drop() tea.Cmd {
	g := m.grabbed
	m.grabbed = nil
	to := m.Focus()

	result, err := commands.NewMoveItemByIDCommand(m.repo, g.itemID, to).Execute(context.Background())
	if err != nil {
		m.Refresh()
		return Status(err.Error(), true)
	}

	m.Refresh()
	for i, it := range m.items[m.focus] {
		if it.ID == g.itemID {
			m.scroll[m.focus].SetCursor(i)
			break
		}
	}
	if !result.Moved {
		return Status(result.Message, false)
	}
	return tea.Batch(
		Status(result.Message, false),
		func() tea.Msg { return BoardChangedMsg{} },
	)
}

// View renders the board
func (m *BoardModel) View() string {
	n := len(domain.Columns)
	width := m.Width
	if width <= 0 {
		width = 90
	}
	// each column box adds two border cells and two padding cells
	colWidth := width/n - 4
	if colWidth < 12 {
		colWidth = 12
	}

	cols := make([]string, n)
	for i, col := range domain.Columns {
		cols[i] = m.renderColumn(i, col, colWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *BoardModel) renderColumn(idx int, col domain.Column, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d)", col.Label(), len(m.items[idx]))
	b.WriteString(styles.ColumnHeader.Foreground(styles.ColumnColor(col)).Render(header))
	b.WriteString("\n")

	sc := m.scroll[idx]
	above, below := sc.Hidden()
	b.WriteString(overflowLine(above, "↑"))
	b.WriteString("\n")

	start, end := sc.Visible()
	if len(m.items[idx]) == 0 {
		b.WriteString(styles.MutedText.Render("(empty)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		it := m.items[idx][i]
		style := styles.Card
		switch {
		case m.grabbed != nil && it.ID == m.grabbed.itemID:
			style = styles.CardGrabbed
		case idx == m.focus && i == sc.Cursor() && m.grabbed == nil:
			style = styles.CardSelected
		}
		b.WriteString(style.Render(m.renderCard(it, width-2)))
		b.WriteString("\n")
	}

	b.WriteString(overflowLine(below, "↓"))

	border := styles.Muted
	switch {
	case idx == m.focus && m.grabbed != nil:
		border = styles.Warning
	case idx == m.focus:
		border = styles.ColumnColor(col)
	}

	box := styles.Column.BorderForeground(border).Width(width)
	if m.Height > 2 {
		box = box.Height(m.Height - 2)
	}
	return box.Render(b.String())
}

func (m *BoardModel) renderCard(it domain.Item, width int) string {
	name := truncate(it.Name, width)
	meta := fmt.Sprintf("%s · %s", domain.FormatDuration(it.TimeSpent), humanize.RelTime(it.CreatedAt, m.now(), "ago", "from now"))
	return name + "\n" + styles.CardMeta.Render(truncate(meta, width))
}

func overflowLine(n int, arrow string) string {
	if n == 0 {
		return ""
	}
	return styles.MutedText.Render(fmt.Sprintf("%s %d more", arrow, n))
}

// CardText is the plain-text form of an item copied to the clipboard
func CardText(it domain.Item) string {
	text := fmt.Sprintf("%s [%s, %s]", it.Name, it.Column, domain.FormatDuration(it.TimeSpent))
	if it.Description != "" {
		text += "\n\n" + it.Description
	}
	return text
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
