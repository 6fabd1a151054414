package application

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

// Storage keys
const (
	KeyItems     = "kanban-items"
	KeyStats     = "kanban-stats"
	KeyStartDate = "kanban-start-date"
)

// BoardStore reads and writes the board's JSON blobs on top of a
// string key-value store. Missing keys load as empty defaults.
type BoardStore struct {
	kv ports.KVStore
}

// NewBoardStore creates a BoardStore over kv
func NewBoardStore(kv ports.KVStore) *BoardStore {
	return &BoardStore{kv: kv}
}

// KV returns the underlying key-value store
func (s *BoardStore) KV() ports.KVStore {
	return s.kv
}

// LoadItems returns the stored item list, or an empty list when none is stored
func (s *BoardStore) LoadItems() ([]domain.Item, error) {
	raw, ok, err := s.kv.Get(KeyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Item{}, nil
	}

	var items []domain.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	if domain.NormalizeColumns(items) {
		if err := s.SaveItems(items); err != nil {
			return nil, fmt.Errorf("failed to rewrite legacy columns: %w", err)
		}
	}
	return items, nil
}

// SaveItems replaces the stored item list
func (s *BoardStore) SaveItems(items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := s.kv.Set(KeyItems, string(b)); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats blob. Fields are read one at a time so
// blobs written by older versions, or partially written ones, still load.
func (s *BoardStore) LoadStats() (domain.StatsRecord, error) {
	var rec domain.StatsRecord

	raw, ok, err := s.kv.Get(KeyStats)
	if err != nil {
		return rec, fmt.Errorf("failed to read stats: %w", err)
	}
	if !ok || !gjson.Valid(raw) {
		return rec, nil
	}

	r := gjson.Parse(raw)
	rec.TotalWorkTime = int(r.Get("totalWorkTime").Int())
	rec.ItemsCompleted = int(r.Get("itemsCompleted").Int())
	rec.CurrentStreak = int(r.Get("currentStreak").Int())

	if v := r.Get("longestItem"); v.Type == gjson.String {
		name := v.String()
		rec.LongestItem = &name
	}
	if v := r.Get("lastWorkDate"); v.Type == gjson.String {
		if t, err := time.Parse(time.RFC3339, v.String()); err == nil {
			rec.LastWorkDate = &t
		}
	}
	return rec, nil
}

// SaveStats replaces the stored stats blob
func (s *BoardStore) SaveStats(rec domain.StatsRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := s.kv.Set(KeyStats, string(b)); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

// AddWorkTime credits seconds to the total work time and stamps the last
// work date. Returns the new total.
func (s *BoardStore) AddWorkTime(seconds int, at time.Time) (int, error) {
	rec, err := s.LoadStats()
	if err != nil {
		return 0, err
	}
	rec.TotalWorkTime += seconds
	stamp := at.UTC()
	rec.LastWorkDate = &stamp

	if err := s.SaveStats(rec); err != nil {
		return 0, err
	}
	return rec.TotalWorkTime, nil
}

// StartDate returns the stored project start date
func (s *BoardStore) StartDate() (time.Time, bool, error) {
	raw, ok, err := s.kv.Get(KeyStartDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read start date: %w", err)
	}
	if !ok || raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse start date %q: %w", raw, err)
	}
	return t, true, nil
}

// EnsureStartDate stores now as the project start date unless one is
// already present, and returns the effective date
func (s *BoardStore) EnsureStartDate(now time.Time) (time.Time, error) {
	t, ok, err := s.StartDate()
	if err == nil && ok {
		return t, nil
	}
	// An unparseable date is replaced rather than blocking startup
	if err := s.SetStartDate(now); err != nil {
		return time.Time{}, err
	}
	return now.UTC(), nil
}

// SetStartDate overwrites the project start date
func (s *BoardStore) SetStartDate(t time.Time) error {
	if err := s.kv.Set(KeyStartDate, t.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to write start date: %w", err)
	}
	return nil
}

// Clear removes every board key
func (s *BoardStore) Clear() error {
	for _, key := range []string{KeyItems, KeyStats, KeyStartDate} {
		if err := s.kv.Remove(key); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}
