package application

import (
	"log/slog"
	"time"

	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// Pomodoro is the countdown state machine. It does not own a clock: the
// caller invokes Tick about once per second while Running reports true.
type Pomodoro struct {
	plan     domain.SessionPlan
	repo     *Repository
	store    *BoardStore
	notifier ports.Notifier
	now      func() time.Time
	logger   *slog.Logger

	session   domain.SessionType
	remaining int
	total     int
	completed int
	running   bool
}

// Ensure Pomodoro implements Timer
var _ ports.Timer = (*Pomodoro)(nil)

// PomodoroOption configures a Pomodoro
type PomodoroOption func(*Pomodoro)

// WithSessionPlan overrides the session lengths
func WithSessionPlan(plan domain.SessionPlan) PomodoroOption {
	return func(p *Pomodoro) { p.plan = plan }
}

// WithNotifier sets the receiver of session transitions
func WithNotifier(n ports.Notifier) PomodoroOption {
	return func(p *Pomodoro) { p.notifier = n }
}

// WithTimerClock overrides the time source used to stamp work dates
func WithTimerClock(now func() time.Time) PomodoroOption {
	return func(p *Pomodoro) { p.now = now }
}

// WithTimerLogger sets the logger
func WithTimerLogger(l *slog.Logger) PomodoroOption {
	return func(p *Pomodoro) { p.logger = l }
}

// NewPomodoro returns a paused timer at the start of a work session
func NewPomodoro(repo *Repository, store *BoardStore, opts ...PomodoroOption) *Pomodoro {
	p := &Pomodoro{
		plan:   domain.DefaultSessionPlan(),
		repo:   repo,
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Restore()
	return p
}

// SetNotifier replaces the notifier
func (p *Pomodoro) SetNotifier(n ports.Notifier) {
	p.notifier = n
}

// Start begins ticking. Returns false if the timer was already running.
func (p *Pomodoro) Start() bool {
	if p.running {
		return false
	}
	p.running = true
	return true
}

// Pause stops ticking and keeps the remaining time
func (p *Pomodoro) Pause() {
	p.running = false
}

// Running reports whether the timer expects ticks
func (p *Pomodoro) Running() bool {
	return p.running
}

// Tick advances the countdown by one second. During work sessions every
// in-progress item is credited one second. Ticks while paused are ignored.
func (p *Pomodoro) Tick() {
	if !p.running {
		return
	}

	p.remaining--

	if p.session == domain.SessionWork && p.repo != nil {
		for _, it := range p.repo.ByColumn(domain.ColumnInProgress) {
			p.repo.IncrementTime(it.ID, 1)
		}
	}

	if p.remaining <= 0 {
		p.complete()
	}
}

// Skip pauses and moves to the next session without crediting the
// current one
func (p *Pomodoro) Skip() {
	p.Pause()
	p.advance()
}

// Reset pauses and restores the full length of the current session.
// The session type and the completed count are kept.
func (p *Pomodoro) Reset() {
	p.Pause()
	p.total = p.plan.Seconds(p.session)
	p.remaining = p.total
}

// Restore returns the timer to its initial state: a paused, full work
// session with no completed sessions
func (p *Pomodoro) Restore() {
	p.running = false
	p.session = domain.SessionWork
	p.completed = 0
	p.total = p.plan.Seconds(domain.SessionWork)
	p.remaining = p.total
}

// State returns a copy of the timer state
func (p *Pomodoro) State() domain.TimerState {
	return domain.TimerState{
		Session:       p.session,
		Remaining:     p.remaining,
		Total:         p.total,
		CompletedWork: p.completed,
		Running:       p.running,
	}
}

func (p *Pomodoro) complete() {
	p.Pause()
	from := p.session

	if from == domain.SessionWork {
		p.completed++
		if p.store != nil {
			total, err := p.store.AddWorkTime(p.total, p.now())
			if err != nil {
				p.logger.Error("failed to record work time", slog.Any("error", err))
			} else {
				p.logger.Debug("work session recorded",
					slog.Int("seconds", p.total),
					slog.Int("total_work_time", total))
			}
		}
	}

	p.advance()

	if p.notifier != nil {
		p.notifier.SessionChanged(domain.SessionEvent{
			From:      from,
			To:        p.session,
			Completed: true,
			Message:   domain.TransitionMessage(p.session),
		})
	}
}

func (p *Pomodoro) advance() {
	p.session = p.plan.Next(p.session, p.completed)
	p.total = p.plan.Seconds(p.session)
	p.remaining = p.total
}
