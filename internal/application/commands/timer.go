package commands

import (
	"context"
	"fmt"
	"strings"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// TimerAction is one of the timer controls
type TimerAction string

const (
	TimerStart TimerAction = "start"
	TimerPause TimerAction = "pause"
	TimerSkip  TimerAction = "skip"
	TimerReset TimerAction = "reset"
)

var timerMessages = map[TimerAction]string{
	TimerStart: "Timer started",
	TimerPause: "Timer paused",
	TimerSkip:  "Timer skipped",
	TimerReset: "Timer reset",
}

// ParseTimerAction resolves a timer control name
func ParseTimerAction(s string) (TimerAction, bool) {
	a := TimerAction(strings.ToLower(strings.TrimSpace(s)))
	_, ok := timerMessages[a]
	return a, ok
}

// TimerResult contains the timer state after the action
type TimerResult struct {
	State   domain.TimerState
	Message string
}

// TimerCommand drives the pomodoro timer
type TimerCommand struct {
	timer  ports.Timer
	Action TimerAction
}

// NewTimerCommand creates a new TimerCommand
func NewTimerCommand(timer ports.Timer, action TimerAction) *TimerCommand {
	return &TimerCommand{
		timer:  timer,
		Action: action,
	}
}

// Validate checks the action is known
func (c *TimerCommand) Validate() error {
	if _, ok := timerMessages[c.Action]; !ok {
		return &application.ValidationError{
			Field:   "action",
			Message: fmt.Sprintf("unknown timer action: %s", c.Action),
		}
	}
	return nil
}

// Execute runs the timer command. Starting a running timer is accepted.
func (c *TimerCommand) Execute(ctx context.Context) (*TimerResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Action {
	case TimerStart:
		c.timer.Start()
	case TimerPause:
		c.timer.Pause()
	case TimerSkip:
		c.timer.Skip()
	case TimerReset:
		c.timer.Reset()
	}

	return &TimerResult{
		State:   c.timer.State(),
		Message: timerMessages[c.Action],
	}, nil
}
