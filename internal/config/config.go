package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
)

// FileName is the per-directory config file
const FileName = ".selectkit.toml"

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version  int      `toml:"version"`
	Mode     string   `toml:"mode"`
	Layout   string   `toml:"layout"`
	Columns  int      `toml:"columns"`
	Catalog  string   `toml:"catalog,omitempty"`
	Count    int      `toml:"count,omitempty"` // range catalog size when no catalog file is set
	Selected []string `toml:"selected,omitempty"`
	Disabled []string `toml:"disabled,omitempty"`

	UISettings UISettings `toml:"ui"`
	Log        LogConfig  `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowSummary bool `toml:"show_summary"`
	ShowHelp    bool `toml:"show_help"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

// LoadFromPath loads configuration from a specific path. Missing fields
// keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Mode: cfg.Mode})
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	if _, err := selection.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch domain.Layout(c.Layout) {
	case domain.LayoutList, domain.LayoutGrid:
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalidConfig, c.Layout)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidConfig, c.Columns)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SelectionMode returns the parsed mode; Validate guarantees it parses
func (c *Config) SelectionMode() selection.Mode {
	m, _ := selection.ParseMode(c.Mode)
	return m
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Mode:    selection.Multi.String(),
		Layout:  string(domain.LayoutList),
		Columns: 3,
		UISettings: UISettings{
			ShowSummary: true,
			ShowHelp:    true,
		},
		Log: LogConfig{
			File:       "selectkit.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
