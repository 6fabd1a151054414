package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbodoro/internal/adapters/filesystem"
	"kanbodoro/internal/adapters/memory"
	"kanbodoro/internal/adapters/sqlite"
	"kanbodoro/internal/domain"
)

func TestDataDir(t *testing.T) {
	t.Setenv("KANBODORO_DATA_DIR", "/custom/dir")
	assert.Equal(t, "/custom/dir", DataDir())

	t.Setenv("KANBODORO_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "kanbodoro"), DataDir())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("KANBODORO_DATA_DIR", "/data")
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/data", cfg.Store.DataDir)
	assert.Equal(t, domain.DefaultSessionPlan(), cfg.SessionPlan())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestInit_ReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  driver: file
  data_dir: `+dir+`
timer:
  work: 50m
  short_break: 10m
log:
  level: debug
`), 0644))
	t.Setenv("KANBODORO_TIMER_LONG_BREAK_EVERY", "2")

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DriverFile, cfg.Store.Driver)
	assert.Equal(t, dir, cfg.Store.DataDir)
	assert.Equal(t, 50*time.Minute, cfg.Timer.Work)
	assert.Equal(t, 10*time.Minute, cfg.Timer.ShortBreak)
	assert.Equal(t, domain.LongBreakDuration, cfg.Timer.LongBreak)
	assert.Equal(t, 2, cfg.Timer.LongBreakEvery)
	assert.Equal(t, slog.LevelDebug, ParseLevel(cfg.Log.Level))
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"unknown driver", "store.driver", "postgres"},
		{"zero work", "timer.work", time.Duration(0)},
		{"non-positive interval", "timer.long_break_every", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestOpenStore(t *testing.T) {
	tests := []struct {
		driver string
		check  func(t *testing.T, kv any)
	}{
		{DriverMemory, func(t *testing.T, kv any) { assert.IsType(t, &memory.KV{}, kv) }},
		{DriverFile, func(t *testing.T, kv any) { assert.IsType(t, &filesystem.KV{}, kv) }},
		{DriverSQLite, func(t *testing.T, kv any) { assert.IsType(t, &sqlite.KV{}, kv) }},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &Config{Store: StoreConfig{Driver: tt.driver, DataDir: t.TempDir()}}
			kv, err := cfg.OpenStore()
			require.NoError(t, err)
			t.Cleanup(func() { kv.Close() })
			tt.check(t, kv)
		})
	}
}
