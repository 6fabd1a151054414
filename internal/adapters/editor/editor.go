package editor

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"kanbodoro/internal/ports"
)

// Editor implements ports.TextEditor with $EDITOR and scratch files
type Editor struct {
	dir string
}

// Ensure Editor implements TextEditor
var _ ports.TextEditor = (*Editor)(nil)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// New creates an editor whose scratch files live in dir. An empty dir uses
// the system temp directory.
func New(dir string) *Editor {
	return &Editor{dir: dir}
}

// Draft writes text to a new markdown scratch file named after name
func (e *Editor) Draft(name, text string) (string, error) {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "item"
	}

	f, err := os.CreateTemp(e.dir, "kanbodoro-"+slug+"-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	return f.Name(), nil
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	editor := findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Collect reads the edited file, removes it and returns the text with
// trailing whitespace trimmed
func (e *Editor) Collect(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	os.Remove(path)
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// findEditor returns the editor to use
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
