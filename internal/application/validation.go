package application

import (
	"fmt"
	"strings"

	"kanbodoro/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "newName" -> "new name")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "fromColumn" -> "source column")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"column":      "column",
		"fromColumn":  "source column",
		"toColumn":    "destination column",
		"name":        "name",
		"oldName":     "old name",
		"newName":     "new name",
		"itemID":      "item ID",
		"description": "description",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}

// ValidateColumn resolves a raw column argument. Returns an
// InvalidColumnError if it is not one of the board columns.
func ValidateColumn(raw string) (domain.Column, error) {
	col, ok := domain.ParseColumn(raw)
	if !ok {
		return "", &InvalidColumnError{
			Column: raw,
			Valid:  domain.ColumnNames(),
		}
	}
	return col, nil
}

// ValidateArgCount returns a UsageError when fewer than min arguments
// were supplied
func ValidateArgCount(args []string, min int, usage string) error {
	if len(args) < min {
		return &UsageError{Usage: usage}
	}
	return nil
}
