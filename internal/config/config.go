// Package config loads sqlskills settings from a YAML file with
// SQLSKILLS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
// Example: SQLSKILLS_STORE_BACKEND=file
const EnvPrefix = "SQLSKILLS"

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all application configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store" yaml:"store"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// StoreConfig selects where progress is persisted.
type StoreConfig struct {
	// Backend is "sqlite" (snapshot history plus event log) or "file"
	// (a single JSON document).
	Backend string `mapstructure:"backend" yaml:"backend"`

	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// FilePath is the JSON record file. Empty means the XDG default.
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// KeepSnapshots bounds how many saved snapshots the SQLite backend
	// retains. 0 keeps all of them.
	KeepSnapshots int `mapstructure:"keep_snapshots" yaml:"keep_snapshots"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:       BackendSQLite,
			KeepSnapshots: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// DefaultPath resolves the config file path:
// $XDG_CONFIG_HOME/sqlskills/config.yaml, else ~/.config/sqlskills/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sqlskills", "config.yaml"), nil
}

// Load reads configuration from path, merged over defaults and under
// environment overrides. A missing file is not an error. An empty path
// uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	path = expandPath(path)

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Store.DBPath = expandPath(cfg.Store.DBPath)
	cfg.Store.FilePath = expandPath(cfg.Store.FilePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys
// absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.db_path", d.Store.DBPath)
	v.SetDefault("store.file_path", d.Store.FilePath)
	v.SetDefault("store.keep_snapshots", d.Store.KeepSnapshots)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("invalid store.backend %q, must be one of: %s, %s", c.Store.Backend, BackendSQLite, BackendFile)
	}
	if c.Store.KeepSnapshots < 0 {
		return fmt.Errorf("store.keep_snapshots cannot be negative")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log.format %q, must be one of: %s, %s", c.Log.Format, FormatConsole, FormatJSON)
	}
	return nil
}

// Write saves cfg as YAML at path, creating the parent directory.
func Write(path string, cfg *Config) error {
	path = expandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
