package commands

import (
	"context"
	"fmt"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// MoveItemResult contains the result of moving an item
type MoveItemResult struct {
	Item    domain.Item
	Moved   bool
	Message string
}

// MoveItemCommand moves the first item in a column with a given name to
// another column
type MoveItemCommand struct {
	repo       ports.BoardRepository
	FromColumn string
	Name       string
	ToColumn   string
}

// NewMoveItemCommand creates a new MoveItemCommand
func NewMoveItemCommand(repo ports.BoardRepository, fromColumn, name, toColumn string) *MoveItemCommand {
	return &MoveItemCommand{
		repo:       repo,
		FromColumn: fromColumn,
		Name:       name,
		ToColumn:   toColumn,
	}
}

// Validate checks if the move operation is valid. Both columns must be
// board columns.
func (c *MoveItemCommand) Validate() error {
	if err := application.ValidateRequired("fromColumn", c.FromColumn); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("toColumn", c.ToColumn); err != nil {
		return err
	}
	if _, err := application.ValidateColumn(c.FromColumn); err != nil {
		return err
	}
	_, err := application.ValidateColumn(c.ToColumn)
	return err
}

// Execute runs the move item command
func (c *MoveItemCommand) Execute(ctx context.Context) (*MoveItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	from, _ := domain.ParseColumn(c.FromColumn)
	to, _ := domain.ParseColumn(c.ToColumn)

	item, ok := c.repo.Find(from, c.Name)
	if !ok || !c.repo.Move(from, c.Name, to) {
		return nil, &application.NotFoundError{Column: c.FromColumn, Name: c.Name}
	}
	item.Column = to

	return &MoveItemResult{
		Item:    item,
		Moved:   true,
		Message: fmt.Sprintf("Moved '%s' from %s to %s", c.Name, c.FromColumn, c.ToColumn),
	}, nil
}

// MoveItemByIDCommand drops an item onto a column. Dropping an item on the
// column it already occupies is not an error; Moved reports false.
type MoveItemByIDCommand struct {
	repo     ports.BoardRepository
	ItemID   string
	ToColumn domain.Column
}

// NewMoveItemByIDCommand creates a new MoveItemByIDCommand
func NewMoveItemByIDCommand(repo ports.BoardRepository, itemID string, to domain.Column) *MoveItemByIDCommand {
	return &MoveItemByIDCommand{
		repo:     repo,
		ItemID:   itemID,
		ToColumn: to,
	}
}

// Validate checks if the drop is valid
func (c *MoveItemByIDCommand) Validate() error {
	if err := application.ValidateRequired("itemID", c.ItemID); err != nil {
		return err
	}
	if !c.ToColumn.Valid() {
		return &application.InvalidColumnError{
			Column: string(c.ToColumn),
			Valid:  domain.ColumnNames(),
		}
	}
	return nil
}

// Execute runs the drop
func (c *MoveItemByIDCommand) Execute(ctx context.Context) (*MoveItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var item domain.Item
	found := false
	for _, it := range c.repo.Items() {
		if it.ID == c.ItemID {
			item, found = it, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("item %s: %w", c.ItemID, application.ErrNotFound)
	}

	from := item.Column
	if !c.repo.MoveByID(c.ItemID, c.ToColumn) {
		return &MoveItemResult{Item: item, Message: fmt.Sprintf("'%s' is already in %s", item.Name, from)}, nil
	}
	item.Column = c.ToColumn

	return &MoveItemResult{
		Item:    item,
		Moved:   true,
		Message: fmt.Sprintf("Moved '%s' from %s to %s", item.Name, from, c.ToColumn),
	}, nil
}
