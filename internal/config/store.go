package config

import (
	"fmt"

	"kanbodoro/internal/adapters/filesystem"
	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/adapters/sqlite"
	"kanbodoro/internal/ports"
)

// OpenStore opens the configured key-value backend
func (c *Config) OpenStore() (ports.KVStore, error) {
	switch c.Store.Driver {
	case DriverSQLite:
		kv, err := sqlite.Open(c.Store.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return kv, nil
	case DriverFile:
		kv, err := filesystem.NewKV(c.Store.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return kv, nil
	case DriverMemory:
		return memory.NewKV(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
}
