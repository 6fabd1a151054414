package commands

import (
	"context"
	"testing"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
)

func TestParseTimerAction(t *testing.T) {
	tests := []struct {
		input  string
		want   TimerAction
		wantOK bool
	}{
		{"start", TimerStart, true},
		{" PAUSE ", TimerPause, true},
		{"skip", TimerSkip, true},
		{"reset", TimerReset, true},
		{"stop", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTimerAction(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTimerCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	timer := application.NewPomodoro(repo, nil)
	ctx := context.Background()

	steps := []struct {
		action      TimerAction
		wantMsg     string
		wantRunning bool
		wantSession domain.SessionType
	}{
		{TimerStart, "Timer started", true, domain.SessionWork},
		{TimerStart, "Timer started", true, domain.SessionWork},
		{TimerPause, "Timer paused", false, domain.SessionWork},
		{TimerSkip, "Timer skipped", false, domain.SessionShortBreak},
		{TimerReset, "Timer reset", false, domain.SessionShortBreak},
	}

	for _, s := range steps {
		result, err := NewTimerCommand(timer, s.action).Execute(ctx)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.action, err)
		}
		if result.Message != s.wantMsg {
			t.Errorf("%s: expected %q, got %q", s.action, s.wantMsg, result.Message)
		}
		if result.State.Running != s.wantRunning {
			t.Errorf("%s: expected running=%v", s.action, s.wantRunning)
		}
		if result.State.Session != s.wantSession {
			t.Errorf("%s: expected session %s, got %s", s.action, s.wantSession, result.State.Session)
		}
	}

	if _, err := NewTimerCommand(timer, "stop").Execute(ctx); err == nil {
		t.Error("expected error for unknown action")
	}
}
