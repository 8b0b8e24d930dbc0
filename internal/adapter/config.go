package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig holds settings persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // BoltDB file; empty keeps settings in memory
}

// LayoutConfig holds transfer table layout configuration
type LayoutConfig struct {
	ColumnSpacing  int     `mapstructure:"column_spacing"`  // Cells between columns
	MaxInclination float64 `mapstructure:"max_inclination"` // Degrees
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme     string `mapstructure:"theme"`
	Transfers string `mapstructure:"transfers"` // TOML model file; empty uses the built-in demo
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(defaultDataPath(), "settings.db"),
		},
		Layout: LayoutConfig{
			ColumnSpacing:  1,
			MaxInclination: 10,
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "astrogator.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "astrogator")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "astrogator")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "astrogator")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "astrogator")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default locations.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("layout.column_spacing", cfg.Layout.ColumnSpacing)
	v.SetDefault("layout.max_inclination", cfg.Layout.MaxInclination)
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.transfers", cfg.UI.Transfers)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (ASTROGATOR_LAYOUT_COLUMN_SPACING, ...)
	v.SetEnvPrefix("ASTROGATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Layout.ColumnSpacing < 0 {
		return nil, fmt.Errorf("layout.column_spacing must not be negative, got %d", cfg.Layout.ColumnSpacing)
	}

	return cfg, nil
}

// DefaultConfigFile is where LoadConfig looks first when no file is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// SaveConfig writes cfg as YAML to path, creating its directory
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("store.path", cfg.Store.Path)
	v.Set("layout.column_spacing", cfg.Layout.ColumnSpacing)
	v.Set("layout.max_inclination", cfg.Layout.MaxInclination)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.transfers", cfg.UI.Transfers)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
