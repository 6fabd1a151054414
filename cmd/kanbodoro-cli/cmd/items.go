package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kanbodoro/internal/application/commands"
)

var addDescription string

var addCmd = &cobra.Command{
	Use:   "add <column> <name...>",
	Short: "Add an item to a column",
	Long: `Append an item to the end of a column.

Examples:
  kanbodoro-cli add todo Buy milk
  kanbodoro-cli add in-progress Write report --desc "quarterly numbers"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddItemCommand(GetWorkspace().Repo, args[0], joinArgs(args[1:]), addDescription).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := persisted(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "rm <column> <name...>",
	Aliases: []string{"remove"},
	Short:   "Remove an item from a column",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRemoveItemCommand(GetWorkspace().Repo, args[0], joinArgs(args[1:])).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := persisted(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:     "mv <column> <name...> <new_column>",
	Aliases: []string{"move"},
	Short:   "Move an item to another column",
	Long: `Move the first matching item to another column. The last argument is
the destination; everything between the first and the last is the name.

Examples:
  kanbodoro-cli mv todo Buy milk in-progress`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		last := len(args) - 1
		result, err := commands.NewMoveItemCommand(GetWorkspace().Repo, args[0], joinArgs(args[1:last]), args[last]).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := persisted(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <column> <old_name> <new_name...>",
	Short: "Rename an item",
	Long: `Rename the first matching item. The old name is a single word; the
rest of the line is the new name.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameCommand(GetWorkspace().Repo, args[0], args[1], joinArgs(args[2:])).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := persisted(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:     "desc <column> <name> <description...>",
	Aliases: []string{"describe"},
	Short:   "Set an item's description",
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDescribeCommand(GetWorkspace().Repo, args[0], args[1], joinArgs(args[2:])).Execute(context.Background())
		if err != nil {
			return err
		}
		if err := persisted(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "item description")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(describeCmd)
}
