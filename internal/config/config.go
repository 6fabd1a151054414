// Package config loads settings from a yaml file, a .env file and
// KANBODORO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kanbodoro/internal/adapters/sqlite"
	"kanbodoro/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. KANBODORO_STORE_DRIVER
const EnvPrefix = "KANBODORO"

// Store drivers
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Config holds every setting
type Config struct {
	Store StoreConfig `mapstructure:"store" yaml:"store"`
	Timer TimerConfig `mapstructure:"timer" yaml:"timer"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// StoreConfig selects the key-value backend
type StoreConfig struct {
	Driver  string `mapstructure:"driver" yaml:"driver"`
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// TimerConfig holds the session lengths
type TimerConfig struct {
	Work           time.Duration `mapstructure:"work" yaml:"work"`
	ShortBreak     time.Duration `mapstructure:"short_break" yaml:"short_break"`
	LongBreak      time.Duration `mapstructure:"long_break" yaml:"long_break"`
	LongBreakEvery int           `mapstructure:"long_break_every" yaml:"long_break_every"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DataDir returns the data directory from KANBODORO_DATA_DIR,
// falling back to the XDG data directory.
func DataDir() string {
	if env := os.Getenv(EnvPrefix + "_DATA_DIR"); env != "" {
		return env
	}
	return sqlite.DefaultDataDir()
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	plan := domain.DefaultSessionPlan()

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.data_dir", DataDir())
	v.SetDefault("timer.work", plan.Work)
	v.SetDefault("timer.short_break", plan.ShortBreak)
	v.SetDefault("timer.long_break", plan.LongBreak)
	v.SetDefault("timer.long_break_every", plan.LongBreakEvery)
	v.SetDefault("log.level", "info")
}

// Init prepares v: loads .env, points it at the config file and enables
// environment overrides. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)

	if cfgFile == "" {
		cfgFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".kanbodoro")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".kanbodoro"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	switch cfg.Store.Driver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown store driver %q (use %s, %s or %s)",
			cfg.Store.Driver, DriverSQLite, DriverFile, DriverMemory)
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = DataDir()
	}

	t := cfg.Timer
	if t.Work < time.Second || t.ShortBreak < time.Second || t.LongBreak < time.Second {
		return nil, fmt.Errorf("timer durations must be at least one second")
	}
	if t.LongBreakEvery < 1 {
		return nil, fmt.Errorf("timer.long_break_every must be positive")
	}

	return &cfg, nil
}

// SessionPlan returns the configured session lengths
func (c *Config) SessionPlan() domain.SessionPlan {
	return domain.SessionPlan{
		Work:           c.Timer.Work,
		ShortBreak:     c.Timer.ShortBreak,
		LongBreak:      c.Timer.LongBreak,
		LongBreakEvery: c.Timer.LongBreakEvery,
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the configured level
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(c.Log.Level)}))
}

// OpenLogFile opens the log file used by the TUI, whose stdout belongs to
// the screen
func (c *Config) OpenLogFile() (*os.File, error) {
	if err := os.MkdirAll(c.Store.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(c.Store.DataDir, "kanbodoro.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
