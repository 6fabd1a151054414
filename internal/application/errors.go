package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidColumn  = errors.New("invalid column")
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UsageError is returned when a console command gets too few arguments.
// Usage holds the correct invocation.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// UnknownCommandError names a command missing from the dispatch table
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", e.Command)
}

func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}

// NotFoundError represents a (column, name) lookup with no match
type NotFoundError struct {
	Column string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Item '%s' not found in %s", e.Name, e.Column)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidColumnError represents a column name outside the fixed set
type InvalidColumnError struct {
	Column string
	Valid  string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("Invalid column: %s. Use: %s", e.Column, e.Valid)
}

func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}
