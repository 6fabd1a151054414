package console

import (
	"strings"

	"kanbodoro/internal/domain"
)

var (
	columnCommands = map[string]bool{"a": true, "rm": true, "mv": true, "rename": true, "desc": true}
	itemCommands   = map[string]bool{"rm": true, "mv": true, "rename": true, "desc": true}
)

// Suggest returns whole-line completions for a partially typed line, best
// first. The first token completes to command names, the second to column
// keys for commands that take a column, and anything after that to item
// names in that column for commands that act on an existing item.
func (in *Interpreter) Suggest(input string) []string {
	args := strings.Fields(input)
	if len(args) == 0 {
		return nil
	}
	cmd := strings.ToLower(args[0])

	var out []string
	switch {
	case len(args) == 1:
		for _, name := range in.names {
			if strings.HasPrefix(name, cmd) {
				out = append(out, name)
			}
		}

	case len(args) == 2 && columnCommands[cmd]:
		prefix := strings.ToLower(args[1])
		for _, col := range domain.Columns {
			if strings.HasPrefix(col.String(), prefix) {
				out = append(out, cmd+" "+col.String())
			}
		}

	case len(args) >= 3 && itemCommands[cmd]:
		col, ok := domain.ParseColumn(args[1])
		if !ok {
			return nil
		}
		prefix := strings.ToLower(strings.Join(args[2:], " "))
		for _, it := range in.repo.ByColumn(col) {
			if strings.HasPrefix(strings.ToLower(it.Name), prefix) {
				out = append(out, cmd+" "+args[1]+" "+it.Name)
			}
		}
	}
	return out
}
