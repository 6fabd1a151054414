package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"kanbodoro/internal/adapters/editor"
	"kanbodoro/internal/adapters/tui"
	"kanbodoro/internal/adapters/watcher"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/config"
	"kanbodoro/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := flag.String("config", "", "config file (default ./.kanbodoro/config.yaml or ~/.kanbodoro/config.yaml)")
	storeFlag := flag.String("store", "", "store driver: sqlite, file or memory")
	dataDirFlag := flag.String("data-dir", "", "directory holding the board")
	flag.Parse()

	v := viper.New()
	if err := config.Init(v, *cfgFile); err != nil {
		return err
	}
	if *storeFlag != "" {
		v.Set("store.driver", *storeFlag)
	}
	if *dataDirFlag != "" {
		v.Set("store.data_dir", *dataDirFlag)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	// stdout belongs to the screen
	logFile, err := cfg.OpenLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := cfg.NewLogger(logFile)
	slog.SetDefault(logger)

	kv, err := cfg.OpenStore()
	if err != nil {
		return err
	}

	ws, err := workspace.Open(kv, workspace.Options{
		Plan:         cfg.SessionPlan(),
		Logger:       logger,
		SeedDefaults: true,
	})
	if err != nil {
		_ = kv.Close()
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan struct{}
	if src, ok := kv.(ports.ChangeSource); ok {
		w, err := watcher.New(src.WatchPaths(), watcher.DefaultDebounce)
		if err != nil {
			logger.Warn("external changes will not be picked up", slog.Any("error", err))
		} else {
			defer w.Close()
			go w.Run(ctx)
			changes = w.Changes()
		}
	}

	app := tui.NewApp(ws, editor.New(""), changes, logger)
	logger.Info("starting TUI", slog.String("store", cfg.Store.Driver), slog.String("data_dir", cfg.Store.DataDir))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
