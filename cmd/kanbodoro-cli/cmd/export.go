package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/domain"
)

// boardExport is the document written by export
type boardExport struct {
	ExportedAt time.Time              `json:"exportedAt" yaml:"exported_at"`
	StartDate  *time.Time             `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	Board      []commands.ColumnItems `json:"board" yaml:"board"`
	Stats      domain.StatsSnapshot   `json:"stats" yaml:"stats"`
}

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the board and statistics",
	Long: `Write every column with its items plus the current statistics to
stdout as YAML or JSON.

Examples:
  kanbodoro-cli export > board.yaml
  kanbodoro-cli export --format json | jq '.board[1].items'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		w := GetWorkspace()

		board, err := commands.NewListBoardCommand(w.Repo).Execute(ctx)
		if err != nil {
			return err
		}
		stats, err := commands.NewShowStatsCommand(w.Stats, w.Now()).Execute(ctx)
		if err != nil {
			return err
		}

		doc := boardExport{
			ExportedAt: w.Now().UTC(),
			Board:      board,
			Stats:      stats.Snapshot,
		}
		if start, ok, err := w.Store.StartDate(); err != nil {
			return err
		} else if ok {
			doc.StartDate = &start
		}

		switch exportFormat {
		case "yaml", "yml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode yaml: %w", err)
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("unknown format %q (use yaml or json)", exportFormat)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(exportCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
