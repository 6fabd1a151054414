package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kanbodoro/internal/application/commands"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/domain"
)

// RegisterReadTools adds all read-only board tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, b *Board) {
	s.AddTool(listItemsTool(), listItemsHandler(b))
	s.AddTool(findItemsTool(), findItemsHandler(b))
	s.AddTool(statsTool(), statsHandler(b))
	s.AddTool(timerStatusTool(), timerStatusHandler(b))
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List board items. Without a column lists every column in board order."),
		mcp.WithString("column",
			mcp.Description("Column key: "+domain.ColumnNames()+". Omit to list the whole board."),
		),
	)
}

func listItemsHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		column := req.GetString("column", "")

		if column != "" {
			var items []domain.Item
			err := b.Do(func(ws *workspace.Workspace) error {
				var err error
				items, err = commands.NewListItemsCommand(ws.Repo, column).Execute(ctx)
				return err
			})
			if err != nil {
				return toolError(err)
			}
			return formatEntities(items, formatItem)
		}

		var board []commands.ColumnItems
		err := b.Do(func(ws *workspace.Workspace) error {
			var err error
			board, err = commands.NewListBoardCommand(ws.Repo).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, col := range board {
			fmt.Fprintf(&sb, "%s (%d)\n", col.Column.Label(), len(col.Items))
			for _, it := range col.Items {
				sb.WriteString("  ")
				sb.WriteString(formatItem(it))
				sb.WriteByte('\n')
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- find_items ---

func findItemsTool() mcp.Tool {
	return mcp.NewTool("find_items",
		mcp.WithDescription("Fuzzy search item names and descriptions. Queries shorter than two characters return nothing."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func findItemsHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		var matches []commands.ItemMatch
		err := b.Do(func(ws *workspace.Workspace) error {
			var err error
			matches, err = commands.NewFindItemsCommand(ws.Repo, query).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return formatEntities(matches, func(m commands.ItemMatch) string {
			return fmt.Sprintf("[%s] %s", m.Column, formatItem(m.Item))
		})
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Show board statistics: total work time, items completed, longest item, project duration and streak."),
	)
}

func statsHandler(b *Board) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var result *commands.StatsResult
		err := b.Do(func(ws *workspace.Workspace) error {
			var err error
			result, err = commands.NewShowStatsCommand(ws.Stats, ws.Now()).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, line := range result.Lines {
			fmt.Fprintf(&sb, "%s: %s\n", line[0], line[1])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- timer_status ---

func timerStatusTool() mcp.Tool {
	return mcp.NewTool("timer_status",
		mcp.WithDescription("Show the pomodoro timer: session type, remaining time and whether it is running."),
	)
}

func timerStatusHandler(b *Board) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var state domain.TimerState
		_ = b.Do(func(ws *workspace.Workspace) error {
			state = ws.Timer.State()
			return nil
		})
		return mcp.NewToolResultText(formatTimer(state)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatItem(i domain.Item) string {
	s := fmt.Sprintf("%s  (%s)", i.Name, domain.FormatDuration(i.TimeSpent))
	if i.Description != "" {
		s += "  " + i.Description
	}
	return s
}

func formatTimer(s domain.TimerState) string {
	status := "paused"
	if s.Running {
		status = "running"
	}
	return fmt.Sprintf("%s %s (%s), %d work sessions completed",
		s.Session, s.Clock(), status, s.CompletedWork)
}
