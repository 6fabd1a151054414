package domain

import "strings"

// Column is one of the three fixed board states an item can be in
type Column string

const (
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "in-progress"
	ColumnDone       Column = "done"
)

// Columns lists the board columns in display order
var Columns = []Column{ColumnTodo, ColumnInProgress, ColumnDone}

// legacyColumns maps older storage keys onto the canonical ones
var legacyColumns = map[string]Column{
	"in-prog":   ColumnInProgress,
	"completed": ColumnDone,
}

func (c Column) String() string {
	return string(c)
}

// Label returns the human-readable column heading
func (c Column) Label() string {
	switch c {
	case ColumnTodo:
		return "To Do"
	case ColumnInProgress:
		return "In Progress"
	case ColumnDone:
		return "Done"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the canonical columns
func (c Column) Valid() bool {
	switch c {
	case ColumnTodo, ColumnInProgress, ColumnDone:
		return true
	}
	return false
}

// ParseColumn resolves a column key. Matching is case-insensitive and
// accepts the legacy "in-prog" and "completed" keys.
func ParseColumn(s string) (Column, bool) {
	key := strings.ToLower(strings.TrimSpace(s))

	if c := Column(key); c.Valid() {
		return c, true
	}
	if c, ok := legacyColumns[key]; ok {
		return c, true
	}
	return "", false
}

// ColumnNames returns the canonical column keys joined for messages
func ColumnNames() string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ColumnIndex returns the display position of c, or -1
func ColumnIndex(c Column) int {
	for i, col := range Columns {
		if col == c {
			return i
		}
	}
	return -1
}
