package ports

import "kanbodoro/internal/domain"

// Notifier receives session transitions from the pomodoro timer
type Notifier interface {
	SessionChanged(event domain.SessionEvent)
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func(event domain.SessionEvent)

// SessionChanged calls f(event)
func (f NotifierFunc) SessionChanged(event domain.SessionEvent) {
	f(event)
}
