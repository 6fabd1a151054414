package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kanbodoro/internal/application/console"
)

var execConfirm bool

var execCmd = &cobra.Command{
	Use:   "exec <line...>",
	Short: "Run one console line",
	Long: `Run one line of the board console, exactly as typed in the TUI.

Examples:
  kanbodoro-cli exec a todo Buy milk
  kanbodoro-cli exec mv todo Buy milk done
  kanbodoro-cli exec fullreset --yes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		in := GetWorkspace().Console

		entries := in.Execute(ctx, joinArgs(args))
		if in.Pending() {
			entries = append(entries, in.Confirm(ctx, execConfirm)...)
		}
		if err := persisted(); err != nil {
			return err
		}
		return printEntries(cmd, entries)
	},
}

// printEntries writes console output, skipping the echoed command line.
// Error entries become the command's error.
func printEntries(cmd *cobra.Command, entries []console.Entry) error {
	var failures []string
	for _, e := range entries {
		switch {
		case e.Level == console.LevelError:
			failures = append(failures, e.Text)
		case e.Level == console.LevelInfo && strings.HasPrefix(e.Text, "> "):
		default:
			fmt.Fprintln(cmd.OutOrStdout(), e.Text)
		}
	}
	if len(failures) > 0 {
		return errors.New(strings.Join(failures, "\n"))
	}
	return nil
}

func init() {
	execCmd.Flags().BoolVarP(&execConfirm, "yes", "y", false, "confirm a full reset requested by the line")
	rootCmd.AddCommand(execCmd)
}
