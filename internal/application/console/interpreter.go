package console

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"kanbodoro/internal/application"
	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// Usage strings for the column commands
const (
	usageAdd      = "a [column] [name]"
	usageRemove   = "rm [column] [name]"
	usageMove     = "mv [column] [name] [new_column]"
	usageRename   = "rename [column] [old_name] [new_name]"
	usageDescribe = "desc [column] [name] [description]"
)

type handler func(ctx context.Context, args []string) []Entry

// Interpreter parses one console line at a time and dispatches it to the
// board and the timer. Every line is echoed to an append-only log before it
// runs. It is not safe for concurrent use.
type Interpreter struct {
	repo     ports.BoardRepository
	timer    ports.Timer
	resetter ports.Resetter
	logger   *slog.Logger

	names    []string
	handlers map[string]handler
	log      []Entry
	pending  bool
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// NewInterpreter creates an Interpreter over the given board, timer and
// resetter
func NewInterpreter(repo ports.BoardRepository, timer ports.Timer, resetter ports.Resetter, opts ...Option) *Interpreter {
	in := &Interpreter{
		repo:     repo,
		timer:    timer,
		resetter: resetter,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}

	in.names = []string{"help", "a", "rm", "mv", "rename", "desc", "start", "pause", "skip", "reset", "fullreset"}
	in.handlers = map[string]handler{
		"help":      in.help,
		"a":         in.add,
		"rm":        in.remove,
		"mv":        in.move,
		"rename":    in.rename,
		"desc":      in.describe,
		"start":     in.timerAction(commands.TimerStart),
		"pause":     in.timerAction(commands.TimerPause),
		"skip":      in.timerAction(commands.TimerSkip),
		"reset":     in.timerAction(commands.TimerReset),
		"fullreset": in.fullReset,
	}
	return in
}

// Commands returns the command names in help order
func (in *Interpreter) Commands() []string {
	out := make([]string, len(in.names))
	copy(out, in.names)
	return out
}

// Execute runs one console line and returns the entries it appended to the
// log. Blank lines are ignored. While a full reset is pending, "y" or "yes"
// confirms it, "n" or "no" cancels it, and any other line cancels it before
// running.
func (in *Interpreter) Execute(ctx context.Context, line string) []Entry {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	if in.pending {
		switch strings.ToLower(args[0]) {
		case "y", "yes":
			return in.append(append([]Entry{echo(line)}, in.resolve(ctx, true)...)...)
		case "n", "no":
			return in.append(append([]Entry{echo(line)}, in.resolve(ctx, false)...)...)
		}
		cancelled := in.resolve(ctx, false)
		in.append(cancelled...)
		return append(cancelled, in.dispatch(ctx, line, args)...)
	}

	return in.dispatch(ctx, line, args)
}

// Confirm resolves a pending full reset. Without one it does nothing.
func (in *Interpreter) Confirm(ctx context.Context, yes bool) []Entry {
	if !in.pending {
		return nil
	}
	return in.append(in.resolve(ctx, yes)...)
}

// Pending reports whether a full reset awaits confirmation
func (in *Interpreter) Pending() bool {
	return in.pending
}

// Note appends a line that did not come from a command, such as a timer
// notification
func (in *Interpreter) Note(text string, level Level) {
	in.append(Entry{Text: text, Level: level})
}

// Log returns a copy of every entry so far
func (in *Interpreter) Log() []Entry {
	out := make([]Entry, len(in.log))
	copy(out, in.log)
	return out
}

func (in *Interpreter) dispatch(ctx context.Context, line string, args []string) []Entry {
	name := strings.ToLower(args[0])
	out := []Entry{echo(line)}

	h, ok := in.handlers[name]
	if !ok {
		err := &application.UnknownCommandError{Command: name}
		out = append(out, Entry{Text: err.Error(), Level: LevelError})
	} else {
		out = append(out, h(ctx, args[1:])...)
	}

	in.logger.Debug("console command", slog.String("command", name), slog.Int("args", len(args)-1))
	return in.append(out...)
}

func (in *Interpreter) append(entries ...Entry) []Entry {
	in.log = append(in.log, entries...)
	return entries
}

func (in *Interpreter) help(ctx context.Context, args []string) []Entry {
	out := make([]Entry, 0, len(helpLines)+1)
	for _, l := range helpLines {
		out = append(out, Entry{Text: l})
	}
	out = append(out, Entry{Text: "Columns: " + domain.ColumnNames()})
	return out
}

func (in *Interpreter) add(ctx context.Context, args []string) []Entry {
	if err := application.ValidateArgCount(args, 2, usageAdd); err != nil {
		return in.fail(err)
	}
	res, err := commands.NewAddItemCommand(in.repo, args[0], strings.Join(args[1:], " "), "").Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	return success(res.Message)
}

func (in *Interpreter) remove(ctx context.Context, args []string) []Entry {
	if err := application.ValidateArgCount(args, 2, usageRemove); err != nil {
		return in.fail(err)
	}
	res, err := commands.NewRemoveItemCommand(in.repo, args[0], strings.Join(args[1:], " ")).Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	return success(res.Message)
}

// move takes the last token as the destination column and everything
// between the first and the last as the item name
func (in *Interpreter) move(ctx context.Context, args []string) []Entry {
	if err := application.ValidateArgCount(args, 3, usageMove); err != nil {
		return in.fail(err)
	}
	last := len(args) - 1
	res, err := commands.NewMoveItemCommand(in.repo, args[0], strings.Join(args[1:last], " "), args[last]).Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	return success(res.Message)
}

// rename takes a single-token old name; the rest is the new name
func (in *Interpreter) rename(ctx context.Context, args []string) []Entry {
	if err := application.ValidateArgCount(args, 3, usageRename); err != nil {
		return in.fail(err)
	}
	res, err := commands.NewRenameCommand(in.repo, args[0], args[1], strings.Join(args[2:], " ")).Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	return success(res.Message)
}

func (in *Interpreter) describe(ctx context.Context, args []string) []Entry {
	if err := application.ValidateArgCount(args, 3, usageDescribe); err != nil {
		return in.fail(err)
	}
	res, err := commands.NewDescribeCommand(in.repo, args[0], args[1], strings.Join(args[2:], " ")).Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	return success(res.Message)
}

func (in *Interpreter) timerAction(action commands.TimerAction) handler {
	return func(ctx context.Context, args []string) []Entry {
		res, err := commands.NewTimerCommand(in.timer, action).Execute(ctx)
		if err != nil {
			return in.fail(err)
		}
		return success(res.Message)
	}
}

func (in *Interpreter) fullReset(ctx context.Context, args []string) []Entry {
	in.pending = true
	return []Entry{{Text: commands.FullResetPrompt + " (y/n)", Level: LevelWarn}}
}

func (in *Interpreter) resolve(ctx context.Context, yes bool) []Entry {
	in.pending = false
	res, err := commands.NewFullResetCommand(in.resetter, yes).Execute(ctx)
	if err != nil {
		return in.fail(err)
	}
	if !res.Reset {
		return []Entry{{Text: res.Message}}
	}
	return success(res.Message)
}

func (in *Interpreter) fail(err error) []Entry {
	var (
		usage   *application.UsageError
		unknown *application.UnknownCommandError
	)
	switch {
	case errors.As(err, &usage),
		errors.As(err, &unknown),
		errors.Is(err, application.ErrNotFound),
		errors.Is(err, application.ErrInvalidColumn):
		return []Entry{{Text: err.Error(), Level: LevelError}}
	}

	in.logger.Error("console command failed", slog.Any("error", err))
	return []Entry{{Text: "Error executing command: " + err.Error(), Level: LevelError}}
}

func echo(line string) Entry {
	return Entry{Text: "> " + strings.TrimSpace(line), Level: LevelInfo}
}

func success(msg string) []Entry {
	return []Entry{{Text: msg, Level: LevelSuccess}}
}
