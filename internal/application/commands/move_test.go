package commands

import (
	"context"
	"errors"
	"testing"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
)

func TestMoveItemCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		item    string
		to      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid move",
			from:    "todo",
			item:    "Buy milk",
			to:      "done",
			wantErr: false,
		},
		{
			name:    "empty source column",
			from:    "",
			item:    "Buy milk",
			to:      "done",
			wantErr: true,
			errMsg:  "source column is required",
		},
		{
			name:    "empty destination column",
			from:    "todo",
			item:    "Buy milk",
			to:      "",
			wantErr: true,
			errMsg:  "destination column is required",
		},
		{
			name:    "invalid source column",
			from:    "someday",
			item:    "Buy milk",
			to:      "done",
			wantErr: true,
			errMsg:  "Invalid column: someday",
		},
		{
			name:    "invalid destination column",
			from:    "todo",
			item:    "Buy milk",
			to:      "archive",
			wantErr: true,
			errMsg:  "Invalid column: archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveItemCommand{
				FromColumn: tt.from,
				Name:       tt.item,
				ToColumn:   tt.to,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestMoveItemCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(domain.ColumnTodo, "Buy milk", "")

	result, err := NewMoveItemCommand(repo, "todo", "buy MILK", "done").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Moved 'buy MILK' from todo to done" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if len(repo.ByColumn(domain.ColumnTodo)) != 0 {
		t.Error("expected todo to be empty")
	}
	if done := repo.ByColumn(domain.ColumnDone); len(done) != 1 || done[0].Name != "Buy milk" {
		t.Errorf("expected Buy milk in done, got %+v", done)
	}
}

func TestMoveItemCommand_ResultIsMovedItem(t *testing.T) {
	repo := newTestRepo(t)
	existing := repo.Add(domain.ColumnDone, "Buy milk", "already done")
	moved := repo.Add(domain.ColumnTodo, "Buy milk", "this one")

	result, err := NewMoveItemCommand(repo, "todo", "Buy milk", "done").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Item.ID != moved.ID {
		t.Errorf("expected moved item %s, got %s (existing is %s)", moved.ID, result.Item.ID, existing.ID)
	}
	if result.Item.Column != domain.ColumnDone {
		t.Errorf("expected column done, got %s", result.Item.Column)
	}
	if result.Item.Description != "this one" {
		t.Errorf("unexpected description: %q", result.Item.Description)
	}
}

func TestMoveItemCommand_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(domain.ColumnInProgress, "Buy milk", "")
	before := repo.Items()

	_, err := NewMoveItemCommand(repo, "todo", "Buy milk", "done").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Item 'Buy milk' not found in todo" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	after := repo.Items()
	if len(after) != len(before) || after[0].Column != before[0].Column {
		t.Errorf("item list changed: %+v -> %+v", before, after)
	}
}

func TestMoveItemByIDCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	item := repo.Add(domain.ColumnTodo, "Buy milk", "")

	tests := []struct {
		name      string
		id        string
		to        domain.Column
		wantMoved bool
		wantErr   error
	}{
		{name: "drop on another column", id: item.ID, to: domain.ColumnInProgress, wantMoved: true},
		{name: "drop on same column", id: item.ID, to: domain.ColumnInProgress, wantMoved: false},
		{name: "unknown id", id: "missing", to: domain.ColumnDone, wantErr: application.ErrNotFound},
		{name: "invalid column", id: item.ID, to: domain.Column("archive"), wantErr: application.ErrInvalidColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewMoveItemByIDCommand(repo, tt.id, tt.to).Execute(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Moved != tt.wantMoved {
				t.Errorf("expected moved=%v, got %v", tt.wantMoved, result.Moved)
			}
		})
	}

	got, _ := repo.Get(item.ID)
	if got.Column != domain.ColumnInProgress {
		t.Errorf("expected item in in-progress, got %s", got.Column)
	}
}
