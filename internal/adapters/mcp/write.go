package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/application/console"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/domain"
)

// RegisterWriteTools adds all board-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, b *Board) {
	s.AddTool(addItemTool(), addItemHandler(b))
	s.AddTool(removeItemTool(), removeItemHandler(b))
	s.AddTool(moveItemTool(), moveItemHandler(b))
	s.AddTool(renameItemTool(), renameItemHandler(b))
	s.AddTool(describeItemTool(), describeItemHandler(b))
	s.AddTool(consoleTool(), consoleHandler(b))
}

func columnParam(name, desc string) mcp.ToolOption {
	return mcp.WithString(name,
		mcp.Description(desc+" ("+domain.ColumnNames()+")"),
		mcp.Required(),
	)
}

// --- add_item ---

func addItemTool() mcp.Tool {
	return mcp.NewTool("add_item",
		mcp.WithDescription("Append a new item to the end of a column."),
		columnParam("column", "Column to add to"),
		mcp.WithString("name",
			mcp.Description("Item name"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Optional item description"),
		),
	)
}

func addItemHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		column := req.GetString("column", "")
		name := req.GetString("name", "")
		description := req.GetString("description", "")

		var message string
		err := b.Do(func(ws *workspace.Workspace) error {
			result, err := commands.NewAddItemCommand(ws.Repo, column, name, description).Execute(ctx)
			if err != nil {
				return err
			}
			message = result.Message
			return ws.Repo.LastError()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(message), nil
	}
}

// --- remove_item ---

func removeItemTool() mcp.Tool {
	return mcp.NewTool("remove_item",
		mcp.WithDescription("Remove the first item in a column whose name matches, ignoring case."),
		columnParam("column", "Column holding the item"),
		mcp.WithString("name",
			mcp.Description("Item name"),
			mcp.Required(),
		),
	)
}

func removeItemHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		column := req.GetString("column", "")
		name := req.GetString("name", "")

		var message string
		err := b.Do(func(ws *workspace.Workspace) error {
			result, err := commands.NewRemoveItemCommand(ws.Repo, column, name).Execute(ctx)
			if err != nil {
				return err
			}
			message = result.Message
			return ws.Repo.LastError()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(message), nil
	}
}

// --- move_item ---

func moveItemTool() mcp.Tool {
	return mcp.NewTool("move_item",
		mcp.WithDescription("Move the first matching item from one column to another."),
		columnParam("from_column", "Column holding the item"),
		mcp.WithString("name",
			mcp.Description("Item name"),
			mcp.Required(),
		),
		columnParam("to_column", "Destination column"),
	)
}

func moveItemHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from := req.GetString("from_column", "")
		name := req.GetString("name", "")
		to := req.GetString("to_column", "")

		var message string
		err := b.Do(func(ws *workspace.Workspace) error {
			result, err := commands.NewMoveItemCommand(ws.Repo, from, name, to).Execute(ctx)
			if err != nil {
				return err
			}
			message = result.Message
			return ws.Repo.LastError()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(message), nil
	}
}

// --- rename_item ---

func renameItemTool() mcp.Tool {
	return mcp.NewTool("rename_item",
		mcp.WithDescription("Rename the first matching item in a column."),
		columnParam("column", "Column holding the item"),
		mcp.WithString("old_name",
			mcp.Description("Current item name"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New item name"),
			mcp.Required(),
		),
	)
}

func renameItemHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		column := req.GetString("column", "")
		oldName := req.GetString("old_name", "")
		newName := req.GetString("new_name", "")

		var message string
		err := b.Do(func(ws *workspace.Workspace) error {
			result, err := commands.NewRenameCommand(ws.Repo, column, oldName, newName).Execute(ctx)
			if err != nil {
				return err
			}
			message = result.Message
			return ws.Repo.LastError()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(message), nil
	}
}

// --- describe_item ---

func describeItemTool() mcp.Tool {
	return mcp.NewTool("describe_item",
		mcp.WithDescription("Replace the description of the first matching item in a column. An empty description clears it."),
		columnParam("column", "Column holding the item"),
		mcp.WithString("name",
			mcp.Description("Item name"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
	)
}

func describeItemHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		column := req.GetString("column", "")
		name := req.GetString("name", "")
		description := req.GetString("description", "")

		var message string
		err := b.Do(func(ws *workspace.Workspace) error {
			result, err := commands.NewDescribeCommand(ws.Repo, column, name, description).Execute(ctx)
			if err != nil {
				return err
			}
			message = result.Message
			return ws.Repo.LastError()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(message), nil
	}
}

// --- console ---

func consoleTool() mcp.Tool {
	return mcp.NewTool("console",
		mcp.WithDescription("Run one console line (help, a, rm, mv, rename, desc, start, pause, skip, reset, fullreset) and return the log lines it produced. "+
			"fullreset asks for confirmation; answer with a following 'y' or 'n' line, or pass confirm to answer in the same call."),
		mcp.WithString("line",
			mcp.Description("Console line, e.g. 'a todo Buy milk'"),
			mcp.Required(),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Answer a full reset prompt raised by this line"),
		),
	)
}

func consoleHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := req.GetString("line", "")
		args := req.GetArguments()
		_, answer := args["confirm"]
		confirm := req.GetBool("confirm", false)

		var entries []console.Entry
		_ = b.Do(func(ws *workspace.Workspace) error {
			entries = ws.Console.Execute(ctx, line)
			if answer && ws.Console.Pending() {
				entries = append(entries, ws.Console.Confirm(ctx, confirm)...)
			}
			return nil
		})

		if len(entries) == 0 {
			return mcp.NewToolResultText("No output."), nil
		}

		var sb strings.Builder
		failed := false
		for _, e := range entries {
			if e.Level == console.LevelError {
				failed = true
			}
			sb.WriteString(e.Text)
			sb.WriteByte('\n')
		}
		b.logger.Debug("console tool", "line", line, "entries", len(entries), "failed", failed)
		if failed {
			return mcp.NewToolResultError(sb.String()), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
