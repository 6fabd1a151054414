package commands

import (
	"context"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// ListItemsCommand lists the items of one column, or of every column when
// Column is empty
type ListItemsCommand struct {
	repo   ports.BoardRepository
	Column string
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(repo ports.BoardRepository, column string) *ListItemsCommand {
	return &ListItemsCommand{
		repo:   repo,
		Column: column,
	}
}

// Execute runs the list items command
func (c *ListItemsCommand) Execute(ctx context.Context) ([]domain.Item, error) {
	if c.Column == "" {
		return c.repo.Items(), nil
	}
	col, err := application.ValidateColumn(c.Column)
	if err != nil {
		return nil, err
	}
	return c.repo.ByColumn(col), nil
}

// ColumnItems pairs a column with its items in display order
type ColumnItems struct {
	Column domain.Column `json:"column" yaml:"column"`
	Items  []domain.Item `json:"items" yaml:"items"`
}

// ListBoardCommand returns every column with its items
type ListBoardCommand struct {
	repo ports.BoardRepository
}

// NewListBoardCommand creates a new ListBoardCommand
func NewListBoardCommand(repo ports.BoardRepository) *ListBoardCommand {
	return &ListBoardCommand{repo: repo}
}

// Execute runs the list board command
func (c *ListBoardCommand) Execute(ctx context.Context) ([]ColumnItems, error) {
	board := make([]ColumnItems, 0, len(domain.Columns))
	for _, col := range domain.Columns {
		items := c.repo.ByColumn(col)
		if items == nil {
			items = []domain.Item{}
		}
		board = append(board, ColumnItems{Column: col, Items: items})
	}
	return board, nil
}
