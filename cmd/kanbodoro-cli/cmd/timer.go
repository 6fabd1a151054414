package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"kanbodoro/internal/adapters/scheduler"
	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

var timerSessions int

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the pomodoro timer in the terminal",
	Long: `Run pomodoro sessions without the TUI. Every second of a work session
is credited to the items in the in-progress column. The next session starts
automatically; stop with Ctrl+C or after --sessions work sessions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runTimer(ctx, cmd)
	},
}

func runTimer(ctx context.Context, cmd *cobra.Command) error {
	w := GetWorkspace()
	out := cmd.OutOrStdout()
	live := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	w.Timer.SetNotifier(ports.NotifierFunc(func(e domain.SessionEvent) {
		if live {
			fmt.Fprint(out, "\r\033[K")
		}
		fmt.Fprintln(out, e.Message)
	}))

	ticker, err := scheduler.NewTicker("pomodoro", time.Second)
	if err != nil {
		return err
	}
	if err := ticker.Start(); err != nil {
		return err
	}
	defer ticker.Stop()

	result, err := commands.NewTimerCommand(w.Timer, commands.TimerStart).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.Message)
	target := w.Timer.State().CompletedWork + timerSessions

	for {
		select {
		case <-ctx.Done():
			w.Timer.Pause()
			if live {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "Timer paused")
			return persisted()
		case <-ticker.C():
			if err := w.Tick(); err != nil {
				return err
			}
			state := w.Timer.State()
			if live {
				fmt.Fprintf(out, "\r\033[K%s %s", state.Session, state.Clock())
			}
			if state.Running {
				continue
			}
			if timerSessions > 0 && state.CompletedWork >= target {
				return persisted()
			}
			w.Timer.Start()
		}
	}
}

func init() {
	timerCmd.Flags().IntVarP(&timerSessions, "sessions", "n", 0, "stop after this many work sessions (0 runs until interrupted)")
	rootCmd.AddCommand(timerCmd)
}
