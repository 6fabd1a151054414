package commands

import (
	"context"
	"fmt"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// DescribeResult contains the result of a description update
type DescribeResult struct {
	Name    string
	Message string
}

// DescribeCommand replaces the description of the first item in a column
// with a given name. An empty description clears it.
type DescribeCommand struct {
	repo        ports.BoardRepository
	Column      string
	Name        string
	Description string
}

// NewDescribeCommand creates a new DescribeCommand
func NewDescribeCommand(repo ports.BoardRepository, column, name, description string) *DescribeCommand {
	return &DescribeCommand{
		repo:        repo,
		Column:      column,
		Name:        name,
		Description: description,
	}
}

// Validate checks if the description update is valid
func (c *DescribeCommand) Validate() error {
	if err := application.ValidateRequired("column", c.Column); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	_, err := application.ValidateColumn(c.Column)
	return err
}

// Execute runs the describe command
func (c *DescribeCommand) Execute(ctx context.Context) (*DescribeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, _ := domain.ParseColumn(c.Column)
	if !c.repo.UpdateDescription(col, c.Name, c.Description) {
		return nil, &application.NotFoundError{Column: c.Column, Name: c.Name}
	}

	return &DescribeResult{
		Name:    c.Name,
		Message: fmt.Sprintf("Updated description for '%s' in %s", c.Name, c.Column),
	}, nil
}

// EditDescriptionCommand stores a description collected from an external
// editor for the item with a given id
type EditDescriptionCommand struct {
	repo        ports.BoardRepository
	ItemID      string
	Description string
}

// NewEditDescriptionCommand creates a new EditDescriptionCommand
func NewEditDescriptionCommand(repo ports.BoardRepository, itemID, description string) *EditDescriptionCommand {
	return &EditDescriptionCommand{
		repo:        repo,
		ItemID:      itemID,
		Description: description,
	}
}

// Execute runs the edit description command
func (c *EditDescriptionCommand) Execute(ctx context.Context) (*DescribeResult, error) {
	if err := application.ValidateRequired("itemID", c.ItemID); err != nil {
		return nil, err
	}
	if !c.repo.UpdateDescriptionByID(c.ItemID, c.Description) {
		return nil, fmt.Errorf("item %s: %w", c.ItemID, application.ErrNotFound)
	}

	var name string
	for _, it := range c.repo.Items() {
		if it.ID == c.ItemID {
			name = it.Name
			break
		}
	}
	return &DescribeResult{
		Name:    name,
		Message: fmt.Sprintf("Updated description for '%s'", name),
	}, nil
}
