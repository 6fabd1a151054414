package commands

import (
	"context"
	"errors"
	"testing"

	"kanbodoro/internal/application"
	"kanbodoro/internal/domain"
)

func TestRenameCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		oldName string
		newName string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid rename",
			column:  "todo",
			oldName: "draft",
			newName: "Final draft",
			wantErr: false,
		},
		{
			name:    "empty column",
			column:  "",
			oldName: "draft",
			newName: "Final",
			wantErr: true,
			errMsg:  "column is required",
		},
		{
			name:    "empty old name",
			column:  "todo",
			oldName: "",
			newName: "Final",
			wantErr: true,
			errMsg:  "old name is required",
		},
		{
			name:    "whitespace new name",
			column:  "todo",
			oldName: "draft",
			newName: "   ",
			wantErr: true,
			errMsg:  "new name is required",
		},
		{
			name:    "invalid column",
			column:  "icebox",
			oldName: "draft",
			newName: "Final",
			wantErr: true,
			errMsg:  "Invalid column: icebox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameCommand{
				Column:  tt.column,
				OldName: tt.oldName,
				NewName: tt.newName,
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

func TestRenameCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(domain.ColumnTodo, "draft", "")

	result, err := NewRenameCommand(repo, "todo", "draft", " Final draft ").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Renamed 'draft' to 'Final draft' in todo" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if _, ok := repo.Find(domain.ColumnTodo, "final draft"); !ok {
		t.Error("expected renamed item to be found")
	}

	_, err = NewRenameCommand(repo, "todo", "draft", "x").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
