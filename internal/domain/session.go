package domain

import (
	"fmt"
	"time"
)

// SessionType is one pomodoro phase
type SessionType int

const (
	SessionWork SessionType = iota
	SessionShortBreak
	SessionLongBreak
)

func (s SessionType) String() string {
	switch s {
	case SessionWork:
		return "Work"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether s is one of the break sessions
func (s SessionType) IsBreak() bool {
	return s == SessionShortBreak || s == SessionLongBreak
}

// Canonical session lengths
const (
	WorkDuration       = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 30 * time.Minute
	LongBreakEvery     = 4
)

// SessionPlan holds the session lengths and the long break cadence
type SessionPlan struct {
	Work           time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	LongBreakEvery int
}

// DefaultSessionPlan returns the classic 25/5/30 plan with a long break
// after every fourth work session
func DefaultSessionPlan() SessionPlan {
	return SessionPlan{
		Work:           WorkDuration,
		ShortBreak:     ShortBreakDuration,
		LongBreak:      LongBreakDuration,
		LongBreakEvery: LongBreakEvery,
	}
}

// Seconds returns the whole-second length of a session type
func (p SessionPlan) Seconds(s SessionType) int {
	switch s {
	case SessionShortBreak:
		return int(p.ShortBreak / time.Second)
	case SessionLongBreak:
		return int(p.LongBreak / time.Second)
	default:
		return int(p.Work / time.Second)
	}
}

// Next returns the session that follows current. completedWork is the
// number of work sessions finished so far. A long break follows when that
// count is a positive multiple of LongBreakEvery.
func (p SessionPlan) Next(current SessionType, completedWork int) SessionType {
	if current.IsBreak() {
		return SessionWork
	}
	every := p.LongBreakEvery
	if every <= 0 {
		every = LongBreakEvery
	}
	if completedWork > 0 && completedWork%every == 0 {
		return SessionLongBreak
	}
	return SessionShortBreak
}

// TimerState is a point-in-time copy of the pomodoro timer
type TimerState struct {
	Session       SessionType
	Remaining     int // seconds
	Total         int // seconds
	CompletedWork int
	Running       bool
}

// Progress returns the elapsed fraction of the current session in [0,1]
func (s TimerState) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Total-s.Remaining) / float64(s.Total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Clock renders the remaining time as MM:SS
func (s TimerState) Clock() string {
	return FormatClock(s.Remaining)
}

// FormatClock renders seconds as zero-padded MM:SS using floor division
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// SessionEvent describes a transition between sessions
type SessionEvent struct {
	From      SessionType
	To        SessionType
	Completed bool // false when the session was skipped
	Message   string
}

// TransitionMessage returns the notification text shown when a session
// ends and the next one begins
func TransitionMessage(to SessionType) string {
	if to == SessionWork {
		return "Break time over! Ready to work?"
	}
	return "Work session complete! Time for a break."
}
