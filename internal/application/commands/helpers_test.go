package commands

import (
	"strings"
	"testing"

	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/application"
)

func newTestRepo(t *testing.T) *application.Repository {
	t.Helper()

	repo, err := application.NewRepository(application.NewBoardStore(memory.NewKV()))
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
