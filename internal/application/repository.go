package application

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// Repository is the in-memory, ordered item list. Every mutation is
// written through to the BoardStore before the call returns, so the
// stored list and the in-memory list never diverge.
type Repository struct {
	store   *BoardStore
	items   []domain.Item
	now     func() time.Time
	newID   func() string
	logger  *slog.Logger
	lastErr error
}

// Ensure Repository implements BoardRepository
var _ ports.BoardRepository = (*Repository)(nil)

// RepositoryOption configures a Repository
type RepositoryOption func(*Repository)

// WithClock overrides the time source used for CreatedAt
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator overrides item id generation
func WithIDGenerator(newID func() string) RepositoryOption {
	return func(r *Repository) { r.newID = newID }
}

// WithLogger sets the logger for persistence failures
func WithLogger(l *slog.Logger) RepositoryOption {
	return func(r *Repository) { r.logger = l }
}

// NewRepository loads the stored items and returns a repository over them
func NewRepository(store *BoardStore, opts ...RepositoryOption) (*Repository, error) {
	r := &Repository{
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	items, err := store.LoadItems()
	if err != nil {
		return nil, err
	}
	r.items = items
	return r, nil
}

// Add appends a new item to column and returns it
func (r *Repository) Add(column domain.Column, name, description string) domain.Item {
	item := domain.Item{
		ID:          r.newID(),
		Name:        name,
		Description: description,
		Column:      column,
		TimeSpent:   0,
		CreatedAt:   r.now().UTC(),
	}
	r.items = append(r.items, item)
	r.persist()
	return item
}

// Remove deletes the first item in column named name
func (r *Repository) Remove(column domain.Column, name string) bool {
	idx := r.indexOf(column, name)
	if idx < 0 {
		return false
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	r.persist()
	return true
}

// Move relocates the first item in from named name to column to. The
// destination is not validated here.
func (r *Repository) Move(from domain.Column, name string, to domain.Column) bool {
	idx := r.indexOf(from, name)
	if idx < 0 {
		return false
	}
	r.items[idx].Column = to
	r.persist()
	return true
}

// MoveByID relocates the item with id to column. Returns false when the id
// is unknown or the item is already there.
func (r *Repository) MoveByID(id string, to domain.Column) bool {
	idx := r.indexOfID(id)
	if idx < 0 || r.items[idx].Column == to {
		return false
	}
	r.items[idx].Column = to
	r.persist()
	return true
}

// Rename changes the name of the first item in column named oldName
func (r *Repository) Rename(column domain.Column, oldName, newName string) bool {
	idx := r.indexOf(column, oldName)
	if idx < 0 {
		return false
	}
	r.items[idx].Name = newName
	r.persist()
	return true
}

// UpdateDescription replaces the description of the first item in column
// named name
func (r *Repository) UpdateDescription(column domain.Column, name, description string) bool {
	idx := r.indexOf(column, name)
	if idx < 0 {
		return false
	}
	r.items[idx].Description = description
	r.persist()
	return true
}

// UpdateDescriptionByID replaces the description of the item with id
func (r *Repository) UpdateDescriptionByID(id, description string) bool {
	idx := r.indexOfID(id)
	if idx < 0 {
		return false
	}
	if r.items[idx].Description == description {
		return true
	}
	r.items[idx].Description = description
	r.persist()
	return true
}

// IncrementTime adds delta seconds to the item with id. Unknown ids are ignored.
func (r *Repository) IncrementTime(id string, delta int) {
	idx := r.indexOfID(id)
	if idx < 0 {
		return
	}
	r.items[idx].TimeSpent += delta
	if r.items[idx].TimeSpent < 0 {
		r.items[idx].TimeSpent = 0
	}
	r.persist()
}

// ByColumn returns the items in column in insertion order
func (r *Repository) ByColumn(column domain.Column) []domain.Item {
	return domain.FilterColumn(r.items, column)
}

// Items returns a copy of every item in stored order
func (r *Repository) Items() []domain.Item {
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Find returns the first item in column named name
func (r *Repository) Find(column domain.Column, name string) (domain.Item, bool) {
	idx := r.indexOf(column, name)
	if idx < 0 {
		return domain.Item{}, false
	}
	return r.items[idx], true
}

// Get returns the item with id
func (r *Repository) Get(id string) (domain.Item, bool) {
	idx := r.indexOfID(id)
	if idx < 0 {
		return domain.Item{}, false
	}
	return r.items[idx], true
}

// SeedDefaults adds one placeholder item per column when the board is empty
func (r *Repository) SeedDefaults() bool {
	if len(r.items) > 0 {
		return false
	}
	for _, col := range domain.Columns {
		r.Add(col, domain.DefaultItemName, "")
	}
	return true
}

// Reset drops every item and seeds the default items
func (r *Repository) Reset() error {
	r.items = []domain.Item{}
	r.SeedDefaults()
	return r.lastErr
}

// Reload replaces the in-memory list with the stored one, picking up
// writes made by another process
func (r *Repository) Reload() error {
	items, err := r.store.LoadItems()
	if err != nil {
		return err
	}
	r.items = items
	return nil
}

// LastError returns the most recent persistence failure, if any
func (r *Repository) LastError() error {
	return r.lastErr
}

func (r *Repository) persist() {
	if err := r.store.SaveItems(r.items); err != nil {
		r.lastErr = err
		r.logger.Error("failed to persist items", slog.Any("error", err))
		return
	}
	r.lastErr = nil
}

func (r *Repository) indexOf(column domain.Column, name string) int {
	for i, it := range r.items {
		if it.Matches(column, name) {
			return i
		}
	}
	return -1
}

func (r *Repository) indexOfID(id string) int {
	for i, it := range r.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
