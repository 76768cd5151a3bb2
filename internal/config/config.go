// Package config provides configuration management.
package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"

	"tariff-compare/internal/errors"
	"tariff-compare/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. TARIFFS_STORE_BACKEND.
const EnvPrefix = "TARIFFS"

// Store backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Store selects where custom vendors are persisted
	Store StoreConfig `json:"store" mapstructure:"store"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`
}

// StoreConfig contains key-value store settings
type StoreConfig struct {
	// Backend is one of memory, file, sqlite
	Backend string `json:"backend" mapstructure:"backend"`

	// Path is the store file (file backend) or database (sqlite backend)
	Path string `json:"path" mapstructure:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// Currency is the ISO code used when displaying totals
	Currency string `json:"currency" mapstructure:"currency"`

	// NoColor disables ANSI colors in cli output
	NoColor bool `json:"no_color" mapstructure:"no_color"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr string `json:"addr" mapstructure:"addr"`
}

// DefaultDir is where the store and config live unless overridden.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tariff-compare"
	}
	return filepath.Join(homeDir, ".tariff-compare")
}

// DefaultPath is the config file written by 'tariffs config init' and the
// first one Load looks for when no path is given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    filepath.Join(DefaultDir(), "store.json"),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			Currency:      "EUR",
		},
		Logging: logging.DefaultConfig(),
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads configuration from path (json or yaml) layered over the
// defaults and TARIFFS_* environment variables. An empty path looks for
// config.{json,yaml} in DefaultDir; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case stderrors.As(err, &notFound):
		case path != "" && os.IsNotExist(err):
		default:
			return nil, errors.Wrap(errors.TypeConfig, "read config", eris.Wrap(err, "config: read file"))
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "decode config", eris.Wrap(err, "config: unmarshal"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.currency", d.Output.Currency)
	v.SetDefault("output.no_color", d.Output.NoColor)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("server.addr", d.Server.Addr)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if c.Store.Path == "" {
			return errors.Config("store.path is required for backend " + c.Store.Backend)
		}
	default:
		return errors.Config("store.backend must be one of: memory, file, sqlite")
	}
	switch c.Output.DefaultFormat {
	case "cli", "json", "markdown", "csv":
	default:
		return errors.Config("output.default_format must be one of: cli, json, markdown, csv")
	}
	if c.Output.Currency == "" {
		return errors.Config("output.currency is required")
	}
	return nil
}

// Save writes the configuration as indented JSON, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.TypeConfig, "create config directory", eris.Wrap(err, "config: mkdir"))
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "encode config", eris.Wrap(err, "config: marshal"))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.TypeConfig, "write config", eris.Wrapf(err, "config: write %s", path))
	}
	return nil
}
