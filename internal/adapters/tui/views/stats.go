package views

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/ports"
)

// StatsKeyMap defines key bindings for the stats overlay
type StatsKeyMap struct {
	Close key.Binding
}

var StatsKeys = StatsKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "s"),
		key.WithHelp("esc/s", "close"),
	),
}

// StatsModel shows the board statistics. They are recomputed every time
// the overlay opens.
type StatsModel struct {
	ViewState
	stats  ports.StatsSource
	now    func() time.Time
	result *commands.StatsResult
}

// NewStatsModel creates a new stats overlay
func NewStatsModel(stats ports.StatsSource, now func() time.Time) *StatsModel {
	return &StatsModel{stats: stats, now: now}
}

// Load recomputes the statistics
func (m *StatsModel) Load() {
	m.ClearMessage()
	result, err := commands.NewShowStatsCommand(m.stats, m.now()).Execute(context.Background())
	if err != nil {
		m.result = nil
		m.SetMessage(err.Error(), true)
		return
	}
	m.result = result
}

// Init initializes the overlay
func (m *StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the overlay
func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, StatsKeys.Close) {
		return m, func() tea.Msg { return SwitchToBoardMsg{} }
	}
	return m, nil
}

// View renders the overlay
func (m *StatsModel) View() string {
	vb := NewViewBuilder().Title("Statistics")
	vb.Message(m.Message, m.MessageErr)

	if m.result != nil {
		for _, line := range m.result.Lines {
			vb.Line(RenderLabelValue(line[0], line[1]))
		}
		if last := m.result.Snapshot.LastWorkDate; last != nil {
			vb.Line(RenderLabelValue("Last session", humanize.RelTime(*last, m.now(), "ago", "from now")))
		}
	}

	vb.BlankLine().Help(StatsKeys.Close)
	return RenderOverlay(vb.String(), m.Width, m.Height)
}
