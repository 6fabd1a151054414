package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [column]",
	Short: "List board items",
	Long: `List the items of one column, or the whole board.

Examples:
  kanbodoro-cli list
  kanbodoro-cli list in-progress`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := GetWorkspace().Now()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			items, err := commands.NewListItemsCommand(GetWorkspace().Repo, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			for _, it := range items {
				fmt.Fprintln(out, formatItemLine(it, now))
			}
			return nil
		}

		board, err := commands.NewListBoardCommand(GetWorkspace().Repo).Execute(ctx)
		if err != nil {
			return err
		}
		for i, col := range board {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%d)\n", col.Column.Label(), len(col.Items))
			for _, it := range col.Items {
				fmt.Fprintln(out, "  "+formatItemLine(it, now))
			}
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show board statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		result, err := commands.NewShowStatsCommand(w.Stats, w.Now()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, line := range result.Lines {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", line[0]+":", line[1])
		}
		if last := result.Snapshot.LastWorkDate; last != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", "Last work session:", humanize.RelTime(*last, w.Now(), "ago", "from now"))
		}
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search item names and descriptions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)
		matches, err := commands.NewFindItemsCommand(GetWorkspace().Repo, query).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results.")
			return nil
		}
		now := GetWorkspace().Now()
		for _, m := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", m.Column, formatItemLine(m.Item, now))
		}
		return nil
	},
}

func formatItemLine(it domain.Item, now time.Time) string {
	line := fmt.Sprintf("%s  [%s, added %s]", it.Name, domain.FormatDuration(it.TimeSpent),
		humanize.RelTime(it.CreatedAt, now, "ago", "from now"))
	if it.Description != "" {
		line += "  " + it.Description
	}
	return line
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(findCmd)
}
