package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Ticker delivers a signal on C about once per interval using a gocron
// duration job. Signals are dropped while the previous one is unread, so a
// slow reader never sees a backlog.
type Ticker struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	c         chan time.Time
	name      string
}

// NewTicker creates a stopped ticker
func NewTicker(name string, interval time.Duration) (*Ticker, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Ticker{
		scheduler: s,
		interval:  interval,
		c:         make(chan time.Time, 1),
		name:      name,
	}, nil
}

// C returns the tick channel
func (t *Ticker) C() <-chan time.Time {
	return t.c
}

// Start schedules the job and starts the scheduler
func (t *Ticker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.interval),
		gocron.NewTask(t.fire),
		gocron.WithName(t.name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s job: %w", t.name, err)
	}

	slog.Debug("Starting ticker", slog.String("name", t.name), slog.Duration("interval", t.interval))
	t.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down
func (t *Ticker) Stop() error {
	slog.Debug("Stopping ticker", slog.String("name", t.name))
	return t.scheduler.Shutdown()
}

func (t *Ticker) fire() {
	select {
	case t.c <- time.Now():
	default:
	}
}
