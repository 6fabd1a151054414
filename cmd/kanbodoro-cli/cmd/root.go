package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/config"
)

var (
	cfgFile string
	verbose bool

	v   = viper.New()
	cfg *config.Config
	ws  *workspace.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "kanbodoro-cli",
	Short: "Kanban board with a pomodoro timer",
	Long: `kanbodoro-cli manages a three-column kanban board (todo, in-progress,
done) and runs pomodoro sessions that credit time to in-progress items.

It shares its board with the kanbodoro TUI and the kanbodoro-mcp server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openWorkspace(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ws == nil {
			return nil
		}
		return ws.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .kanbodoro/config.yaml)")
	flags.String("store", "", "store driver: sqlite, file or memory")
	flags.String("data-dir", "", "directory holding the board")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	_ = v.BindPFlag("store.driver", flags.Lookup("store"))
	_ = v.BindPFlag("store.data_dir", flags.Lookup("data-dir"))
}

func openWorkspace(cmd *cobra.Command) error {
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	// config subcommands only need the settings
	if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		return nil
	}

	kv, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	ws, err = workspace.Open(kv, workspace.Options{
		Plan:         cfg.SessionPlan(),
		Logger:       logger,
		SeedDefaults: true,
	})
	if err != nil {
		_ = kv.Close()
		return err
	}
	return nil
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() *workspace.Workspace {
	return ws
}

// persisted surfaces a write-through failure from the last mutation
func persisted() error {
	if err := ws.Repo.LastError(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}
