package ports

import "os/exec"

// TextEditor hands a scratch file to the user's editor so longer text,
// like an item description, can be written outside the console
type TextEditor interface {
	// Draft writes text to a scratch file and returns its path
	Draft(name, text string) (path string, err error)

	// Command returns an exec.Cmd that edits path; the TUI runs it through
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)

	// Collect reads the edited text back and removes the scratch file
	Collect(path string) (string, error)
}
