// Package config loads olympus settings from defaults, an optional TOML file
// and OLYMPUS_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultLogLevel     = "warn"
	DefaultSnapshotKeep = 50
)

type Config struct {
	// storage
	DBPath       string `toml:"db_path" env:"DB"`
	SnapshotKeep int    `toml:"snapshot_keep" env:"SNAPSHOT_KEEP"`
	// logging
	LogLevel    string `toml:"log_level" env:"LOG_LEVEL"`
	LogFile     string `toml:"log_file" env:"LOG_FILE"`
	LogJSON     bool   `toml:"log_json" env:"LOG_JSON"`
	LogToStderr bool   `toml:"log_to_stderr" env:"LOG_TO_STDERR"`
	// badge draws; 0 seeds from the OS
	Seed uint64 `toml:"seed" env:"SEED"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SnapshotKeep: DefaultSnapshotKeep,
		LogLevel:     DefaultLogLevel,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/olympus/config.toml, falling back to
// ~/.config/olympus/config.toml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "olympus", "config.toml"), nil
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "OLYMPUS_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the rest of the program cannot honor.
func (c Config) Validate() error {
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("snapshot_keep must be at least 1, got %d", c.SnapshotKeep)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
