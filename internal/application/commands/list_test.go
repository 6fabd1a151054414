package commands

import (
	"context"
	"testing"

	"kanbodoro/internal/domain"
)

func TestListItemsCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(domain.ColumnTodo, "a", "")
	repo.Add(domain.ColumnDone, "b", "")
	repo.Add(domain.ColumnTodo, "c", "")

	tests := []struct {
		name      string
		column    string
		wantNames []string
		wantErr   bool
	}{
		{name: "all columns", column: "", wantNames: []string{"a", "b", "c"}},
		{name: "one column keeps order", column: "todo", wantNames: []string{"a", "c"}},
		{name: "legacy alias", column: "completed", wantNames: []string{"b"}},
		{name: "invalid column", column: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewListItemsCommand(repo, tt.column).Execute(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != len(tt.wantNames) {
				t.Fatalf("expected %d items, got %d", len(tt.wantNames), len(items))
			}
			for i, want := range tt.wantNames {
				if items[i].Name != want {
					t.Errorf("item %d: expected %q, got %q", i, want, items[i].Name)
				}
			}
		})
	}
}

func TestListBoardCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(domain.ColumnInProgress, "a", "")

	board, err := NewListBoardCommand(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(board))
	}
	for i, col := range domain.Columns {
		if board[i].Column != col {
			t.Errorf("column %d: expected %s, got %s", i, col, board[i].Column)
		}
		if board[i].Items == nil {
			t.Errorf("column %s: expected non-nil items", col)
		}
	}
	if len(board[1].Items) != 1 {
		t.Errorf("expected one in-progress item, got %d", len(board[1].Items))
	}
}
