package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

func newTestPomodoro(t *testing.T) (*Pomodoro, *Repository, *BoardStore, *[]domain.SessionEvent) {
	t.Helper()

	repo, store := newTestRepository(t)
	var events []domain.SessionEvent
	timer := NewPomodoro(repo, store,
		WithTimerClock(func() time.Time { return fixedNow }),
		WithNotifier(ports.NotifierFunc(func(e domain.SessionEvent) {
			events = append(events, e)
		})),
	)
	return timer, repo, store, &events
}

func tickN(p *Pomodoro, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestPomodoro_InitialState(t *testing.T) {
	timer, _, _, _ := newTestPomodoro(t)

	state := timer.State()
	assert.Equal(t, domain.SessionWork, state.Session)
	assert.Equal(t, 1500, state.Remaining)
	assert.Equal(t, 1500, state.Total)
	assert.False(t, state.Running)
	assert.Equal(t, "25:00", state.Clock())
}

func TestPomodoro_TickIgnoredWhilePaused(t *testing.T) {
	timer, _, _, _ := newTestPomodoro(t)

	timer.Tick()
	assert.Equal(t, 1500, timer.State().Remaining)

	require.True(t, timer.Start())
	assert.False(t, timer.Start(), "second start is a no-op")
	timer.Tick()
	assert.Equal(t, 1499, timer.State().Remaining)

	timer.Pause()
	timer.Tick()
	assert.Equal(t, 1499, timer.State().Remaining)
}

func TestPomodoro_WorkSessionCompletes(t *testing.T) {
	timer, _, store, events := newTestPomodoro(t)

	timer.Start()
	tickN(timer, 1500)

	state := timer.State()
	assert.Equal(t, domain.SessionShortBreak, state.Session)
	assert.Equal(t, 300, state.Remaining)
	assert.Equal(t, 1, state.CompletedWork)
	assert.False(t, state.Running, "completion pauses the timer")

	rec, err := store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1500, rec.TotalWorkTime)
	require.NotNil(t, rec.LastWorkDate)

	require.Len(t, *events, 1)
	assert.Equal(t, domain.SessionWork, (*events)[0].From)
	assert.Equal(t, domain.SessionShortBreak, (*events)[0].To)
	assert.Equal(t, "Work session complete! Time for a break.", (*events)[0].Message)
}

func TestPomodoro_LongBreakAfterFourthWorkSession(t *testing.T) {
	timer, _, store, _ := newTestPomodoro(t)

	for i := 1; i <= 4; i++ {
		timer.Start()
		tickN(timer, 1500)

		state := timer.State()
		if i < 4 {
			assert.Equal(t, domain.SessionShortBreak, state.Session, "session %d", i)
			assert.Equal(t, 300, state.Total)
			timer.Start()
			tickN(timer, 300)
			assert.Equal(t, domain.SessionWork, timer.State().Session)
		} else {
			assert.Equal(t, domain.SessionLongBreak, state.Session)
			assert.Equal(t, 1800, state.Total)
		}
	}

	rec, err := store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 4*1500, rec.TotalWorkTime)
	assert.Equal(t, 4, timer.State().CompletedWork)
}

func TestPomodoro_SkipForfeitsCredit(t *testing.T) {
	timer, _, store, events := newTestPomodoro(t)

	timer.Start()
	tickN(timer, 700)
	timer.Skip()

	state := timer.State()
	assert.Equal(t, domain.SessionShortBreak, state.Session)
	assert.Equal(t, 0, state.CompletedWork)
	assert.False(t, state.Running)

	rec, err := store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TotalWorkTime)
	assert.Empty(t, *events)

	timer.Skip()
	assert.Equal(t, domain.SessionWork, timer.State().Session)
}

func TestPomodoro_ResetKeepsSessionType(t *testing.T) {
	timer, _, _, _ := newTestPomodoro(t)

	timer.Skip() // into a short break
	timer.Start()
	tickN(timer, 42)
	timer.Reset()

	state := timer.State()
	assert.Equal(t, domain.SessionShortBreak, state.Session)
	assert.Equal(t, 300, state.Remaining)
	assert.False(t, state.Running)
}

func TestPomodoro_CreditsInProgressItemsDuringWork(t *testing.T) {
	timer, repo, store, _ := newTestPomodoro(t)
	active := repo.Add(domain.ColumnInProgress, "active", "")
	idle := repo.Add(domain.ColumnTodo, "idle", "")

	timer.Start()
	tickN(timer, 10)

	got, _ := repo.Get(active.ID)
	assert.Equal(t, 10, got.TimeSpent)
	got, _ = repo.Get(idle.ID)
	assert.Equal(t, 0, got.TimeSpent)
	assertWriteThrough(t, repo, store)

	// Breaks do not credit items
	timer.Skip()
	timer.Start()
	tickN(timer, 10)
	got, _ = repo.Get(active.ID)
	assert.Equal(t, 10, got.TimeSpent)
}

func TestPomodoro_BreakCompletionReturnsToWork(t *testing.T) {
	timer, _, store, events := newTestPomodoro(t)

	timer.Skip()
	timer.Start()
	tickN(timer, 300)

	assert.Equal(t, domain.SessionWork, timer.State().Session)
	assert.Equal(t, 1500, timer.State().Remaining)
	rec, err := store.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TotalWorkTime)
	require.Len(t, *events, 1)
	assert.Equal(t, "Break time over! Ready to work?", (*events)[0].Message)
}

func TestPomodoro_CustomPlan(t *testing.T) {
	repo, store := newTestRepository(t)
	plan := domain.SessionPlan{
		Work:           2 * time.Second,
		ShortBreak:     time.Second,
		LongBreak:      3 * time.Second,
		LongBreakEvery: 2,
	}
	timer := NewPomodoro(repo, store, WithSessionPlan(plan))

	timer.Start()
	tickN(timer, 2)
	assert.Equal(t, domain.SessionShortBreak, timer.State().Session)
	timer.Start()
	tickN(timer, 1)
	timer.Start()
	tickN(timer, 2)
	assert.Equal(t, domain.SessionLongBreak, timer.State().Session)
	assert.Equal(t, 3, timer.State().Total)
}

func TestPomodoro_Restore(t *testing.T) {
	timer, _, _, _ := newTestPomodoro(t)
	timer.Start()
	tickN(timer, 1500)
	timer.Start()

	timer.Restore()

	assert.Equal(t, domain.TimerState{
		Session:   domain.SessionWork,
		Remaining: 1500,
		Total:     1500,
	}, timer.State())
}
