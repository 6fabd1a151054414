package commands

import (
	"context"
	"sort"
	"strings"

	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// ItemMatch wraps an item with a relevance score
type ItemMatch struct {
	domain.Item
	Score int
}

// FindItemsCommand searches item names and descriptions with fuzzy matching
type FindItemsCommand struct {
	repo  ports.BoardRepository
	Query string
}

// NewFindItemsCommand creates a new FindItemsCommand
func NewFindItemsCommand(repo ports.BoardRepository, query string) *FindItemsCommand {
	return &FindItemsCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the find command and returns scored, sorted matches
func (c *FindItemsCommand) Execute(ctx context.Context) ([]ItemMatch, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}
	return FuzzySort(c.repo.Items(), query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Substring matches outrank scattered ones
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '_') {
			score += 10 // word start
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores items against query and sorts them by relevance. Names
// weigh more than descriptions. Items that do not match are dropped; equal
// scores keep board order.
func FuzzySort(items []domain.Item, query string) []ItemMatch {
	scored := make([]ItemMatch, 0, len(items))

	for _, it := range items {
		best := max(FuzzyScore(it.Name, query), FuzzyScore(it.Description, query)/2)
		if best > 0 {
			scored = append(scored, ItemMatch{Item: it, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
