package commands

import (
	"context"
	"fmt"
	"strings"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// AddItemResult contains the result of adding an item
type AddItemResult struct {
	Item    domain.Item
	Message string
}

// AddItemCommand appends an item to a column
type AddItemCommand struct {
	repo        ports.BoardRepository
	Column      string
	Name        string
	Description string
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(repo ports.BoardRepository, column, name, description string) *AddItemCommand {
	return &AddItemCommand{
		repo:        repo,
		Column:      column,
		Name:        name,
		Description: description,
	}
}

// Validate checks if the add operation is valid
func (c *AddItemCommand) Validate() error {
	if err := application.ValidateRequired("column", c.Column); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	_, err := application.ValidateColumn(c.Column)
	return err
}

// Execute runs the add item command
func (c *AddItemCommand) Execute(ctx context.Context) (*AddItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, _ := domain.ParseColumn(c.Column)
	name := strings.TrimSpace(c.Name)
	item := c.repo.Add(col, name, c.Description)

	return &AddItemResult{
		Item:    item,
		Message: fmt.Sprintf("Added '%s' to %s", name, c.Column),
	}, nil
}
