package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Database   string         `toml:"database"`    // sqlite content store
	ContentDir string         `toml:"content_dir"` // JSON export imported into the store
	Search     SearchSettings `toml:"search"`
	Lists      ListSettings   `toml:"lists"`
	Logging    logging.Config `toml:"logging"`
}

// SearchSettings configures the search modal
type SearchSettings struct {
	Bundle   string   `toml:"bundle"` // pre-built index bundle
	Debounce Duration `toml:"debounce"`
	PageSize int      `toml:"page_size"`
}

// ListSettings configures the paginated listings
type ListSettings struct {
	PageSize int `toml:"page_size"`
}

// Duration is a time.Duration written as text ("150ms") in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the filmlog config directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "filmlog")
}

// NewConfigService creates a config service for path. An empty path uses
// config.toml in DefaultDir. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Settings missing
// from the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
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
	return nil
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	if c.Search.Debounce.Duration < 0 {
		return fmt.Errorf("search.debounce must not be negative")
	}
	if c.Search.PageSize < 0 || c.Lists.PageSize < 0 {
		return fmt.Errorf("page_size must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version:    1,
		Database:   filepath.Join(dir, "filmlog.db"),
		ContentDir: "content",
		Search: SearchSettings{
			Bundle:   filepath.Join("content", "search-index.json"),
			Debounce: Duration{150 * time.Millisecond},
			PageSize: 10,
		},
		Lists: ListSettings{
			PageSize: 100,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(dir, "filmlog.log"),
		},
	}
}
