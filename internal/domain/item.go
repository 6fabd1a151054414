package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultItemName is the name given to placeholder cards
const DefaultItemName = "new item"

// Item is a single task card on the board
type Item struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description,omitempty"`
	Column      Column    `json:"column" yaml:"column"`
	TimeSpent   int       `json:"timeSpent" yaml:"time_spent"` // seconds
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Matches reports whether the item sits in column and carries name,
// comparing names case-insensitively
func (i Item) Matches(column Column, name string) bool {
	return i.Column == column && strings.EqualFold(i.Name, name)
}

// FilterColumn returns the items in column, preserving their order
func FilterColumn(items []Item, column Column) []Item {
	var result []Item
	for _, it := range items {
		if it.Column == column {
			result = append(result, it)
		}
	}
	return result
}

// NormalizeColumns rewrites legacy column keys in place and reports
// whether anything changed
func NormalizeColumns(items []Item) bool {
	changed := false
	for i := range items {
		if items[i].Column.Valid() {
			continue
		}
		if c, ok := ParseColumn(string(items[i].Column)); ok {
			items[i].Column = c
			changed = true
		}
	}
	return changed
}

// FormatDuration renders seconds as "Xh Ym"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
