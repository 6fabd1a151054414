package commands

import (
	"context"
	"fmt"
	"strings"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	OldName string
	NewName string
	Message string
}

// RenameCommand renames the first item in a column with a given name
type RenameCommand struct {
	repo    ports.BoardRepository
	Column  string
	OldName string
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(repo ports.BoardRepository, column, oldName, newName string) *RenameCommand {
	return &RenameCommand{
		repo:    repo,
		Column:  column,
		OldName: oldName,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := application.ValidateRequired("column", c.Column); err != nil {
		return err
	}
	if err := application.ValidateRequired("oldName", c.OldName); err != nil {
		return err
	}
	if err := application.ValidateRequired("newName", c.NewName); err != nil {
		return err
	}
	_, err := application.ValidateColumn(c.Column)
	return err
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, _ := domain.ParseColumn(c.Column)
	newName := strings.TrimSpace(c.NewName)

	if !c.repo.Rename(col, c.OldName, newName) {
		return nil, &application.NotFoundError{Column: c.Column, Name: c.OldName}
	}

	return &RenameResult{
		OldName: c.OldName,
		NewName: newName,
		Message: fmt.Sprintf("Renamed '%s' to '%s' in %s", c.OldName, newName, c.Column),
	}, nil
}
