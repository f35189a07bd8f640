// Package config loads the settings shared by the command line tools.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// FileName is the base name searched for in the config directory. Any
// extension viper understands works (yaml, json, toml).
const FileName = "formbuilder"

// EnvPrefix prefixes environment overrides, e.g. FORMBUILDER_LOGGING_LEVEL.
const EnvPrefix = "FORMBUILDER"

// Storage drivers for the persisted theme state.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config is the complete tool configuration.
type Config struct {
	Renderer string        `json:"renderer" mapstructure:"renderer"`
	Repair   bool          `json:"repair" mapstructure:"repair"`
	Strict   bool          `json:"strict" mapstructure:"strict"`
	Logging  LoggingConfig `json:"logging" mapstructure:"logging"`
	Theme    ThemeConfig   `json:"theme" mapstructure:"theme"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// ThemeConfig selects where theme state lives and how random themes behave.
type ThemeConfig struct {
	Storage       StorageConfig `json:"storage" mapstructure:"storage"`
	Randomization string        `json:"randomization" mapstructure:"randomization"`
}

// StorageConfig names a storage driver and its location. Path is a directory
// for the file driver and a database file for sqlite.
type StorageConfig struct {
	Driver string `json:"driver" mapstructure:"driver"`
	Path   string `json:"path" mapstructure:"path"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Renderer: "html",
		Repair:   false,
		Strict:   false,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatText,
		},
		Theme: ThemeConfig{
			Storage: StorageConfig{
				Driver: DriverFile,
				Path:   filepath.Join(".formbuilder", "state"),
			},
			Randomization: string(themes.LevelModerate),
		},
	}
}

// Load reads formbuilder.{yaml,json,toml} from dir. A missing file yields the
// defaults, still subject to FORMBUILDER_* environment overrides.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	return read(v, true)
}

// LoadFile reads an explicit config file. Unlike Load, a missing file is an
// error.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return read(v, false)
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("renderer", defaults.Renderer)
	v.SetDefault("repair", defaults.Repair)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("theme.storage.driver", defaults.Theme.Storage.Driver)
	v.SetDefault("theme.storage.path", defaults.Theme.Storage.Path)
	v.SetDefault("theme.randomization", defaults.Theme.Randomization)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper, optional bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !optional || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Renderer) == "" {
		return &Error{Field: "renderer", Message: "must not be empty"}
	}
	switch c.Theme.Storage.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.Theme.Storage.Path) == "" {
			return &Error{Field: "theme.storage.path", Message: "required for driver " + c.Theme.Storage.Driver}
		}
	default:
		return &Error{Field: "theme.storage.driver", Message: fmt.Sprintf("unknown driver %q", c.Theme.Storage.Driver)}
	}
	if !themes.Level(c.Theme.Randomization).Valid() {
		return &Error{Field: "theme.randomization", Message: fmt.Sprintf("unknown level %q", c.Theme.Randomization)}
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatText, logging.FormatJSON, logging.FormatDiscard:
	default:
		return &Error{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	return nil
}

// Error reports an invalid setting.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config: " + e.Field + ": " + e.Message
}
