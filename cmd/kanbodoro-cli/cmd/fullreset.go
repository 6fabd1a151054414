package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"kanbodoro/internal/application/commands"
)

var fullResetYes bool

var fullResetCmd = &cobra.Command{
	Use:   "fullreset",
	Short: "Wipe the board, statistics and start date",
	Long: `Delete every item, the statistics and the project start date, then
seed one default item per column.

Asks for confirmation on a terminal. Elsewhere --yes is required.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed := fullResetYes
		if !confirmed {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("refusing to reset without --yes when stdin is not a terminal")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (y/n) ", commands.FullResetPrompt)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "y", "yes":
				confirmed = true
			}
		}

		result, err := commands.NewFullResetCommand(GetWorkspace(), confirmed).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	fullResetCmd.Flags().BoolVarP(&fullResetYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(fullResetCmd)
}
