package commands

import (
	"context"
	"fmt"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// RemoveItemResult contains the result of a remove operation
type RemoveItemResult struct {
	Removed domain.Item
	Message string
}

// RemoveItemCommand removes the first item in a column with a given name
type RemoveItemCommand struct {
	repo   ports.BoardRepository
	Column string
	Name   string
}

// NewRemoveItemCommand creates a new RemoveItemCommand
func NewRemoveItemCommand(repo ports.BoardRepository, column, name string) *RemoveItemCommand {
	return &RemoveItemCommand{
		repo:   repo,
		Column: column,
		Name:   name,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveItemCommand) Validate() error {
	if err := application.ValidateRequired("column", c.Column); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	_, err := application.ValidateColumn(c.Column)
	return err
}

// Execute runs the remove command
func (c *RemoveItemCommand) Execute(ctx context.Context) (*RemoveItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, _ := domain.ParseColumn(c.Column)
	item, ok := c.repo.Find(col, c.Name)
	if !ok || !c.repo.Remove(col, c.Name) {
		return nil, &application.NotFoundError{Column: c.Column, Name: c.Name}
	}

	return &RemoveItemResult{
		Removed: item,
		Message: fmt.Sprintf("Removed '%s' from %s", c.Name, c.Column),
	}, nil
}
