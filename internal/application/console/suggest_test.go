package console_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpreter_Suggest(t *testing.T) {
	w := newWorkspace(t)
	ctx := context.Background()
	w.Console.Execute(ctx, "a todo Buy milk")
	w.Console.Execute(ctx, "a todo Buy bread")
	w.Console.Execute(ctx, "a done Bake")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "blank", input: "  ", want: nil},
		{name: "command prefix", input: "re", want: []string{"rename", "reset"}},
		{name: "single command", input: "fu", want: []string{"fullreset"}},
		{name: "column prefix", input: "mv in", want: []string{"mv in-progress"}},
		{name: "all columns", input: "a t", want: []string{"a todo"}},
		{name: "no columns for timer commands", input: "start t", want: nil},
		{name: "item prefix", input: "rm todo buy", want: []string{"rm todo Buy milk", "rm todo Buy bread"}},
		{name: "multi word item prefix", input: "rm todo buy m", want: []string{"rm todo Buy milk"}},
		{name: "items only from that column", input: "desc done b", want: []string{"desc done Bake"}},
		{name: "unknown column", input: "rm later b", want: nil},
		{name: "add does not complete items", input: "a todo b", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Console.Suggest(tt.input))
		})
	}
}
