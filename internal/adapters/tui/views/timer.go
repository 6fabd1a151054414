package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"kanbodoro/internal/adapters/tui/styles"
	"kanbodoro/internal/domain"
)

// TimerPanel renders the pomodoro clock and a progress bar. It holds no
// timer state; the app passes the current state to View.
type TimerPanel struct {
	ViewState
	work progress.Model
	rest progress.Model
}

// NewTimerPanel creates a timer panel
func NewTimerPanel() *TimerPanel {
	return &TimerPanel{
		work: progress.New(
			progress.WithGradient(string(styles.Warning), string(styles.Error)),
			progress.WithoutPercentage(),
		),
		rest: progress.New(
			progress.WithGradient(string(styles.Info), string(styles.Secondary)),
			progress.WithoutPercentage(),
		),
	}
}

// View renders state
func (p *TimerPanel) View(state domain.TimerState) string {
	width := p.Width
	if width <= 0 {
		width = 40
	}
	inner := width - 4

	bar := p.work
	if state.Session.IsBreak() {
		bar = p.rest
	}
	bar.Width = inner

	status := "paused"
	if state.Running {
		status = "running"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ColumnHeader.Foreground(styles.SessionColor(state.Session)).Render(state.Session.String()),
		"  ",
		styles.Clock.Render(state.Clock()),
		"  ",
		styles.MutedText.Render(status),
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(state.Progress()))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s %d work sessions completed", pomodoroMark(state.CompletedWork), state.CompletedWork)))

	return styles.Panel.Width(inner).Render(b.String())
}

func pomodoroMark(n int) string {
	if n == 0 {
		return "·"
	}
	return strings.Repeat("●", min(n, 8))
}
