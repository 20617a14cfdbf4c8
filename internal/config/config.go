package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"portfolio/internal/carousel"
)

// Config holds all portfolio configuration.
type Config struct {
	// Carousel behaviour
	Carousel CarouselConfig `yaml:"carousel"`

	// Item data source
	Catalog CatalogConfig `yaml:"catalog"`

	// Viewer preferences file
	Preferences PreferencesConfig `yaml:"preferences"`

	// Terminal host
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CarouselConfig configures the carousel engine.
type CarouselConfig struct {
	Interval      string  `yaml:"interval" env:"PORTFOLIO_INTERVAL"`
	AnnounceDelay string  `yaml:"announce_delay"`
	SwipeDistance float64 `yaml:"swipe_distance"` // pixels
	SwipeVelocity float64 `yaml:"swipe_velocity"` // pixels per second
	ReducedMotion bool    `yaml:"reduced_motion" env:"PORTFOLIO_REDUCED_MOTION"`
}

// CatalogConfig points at the item file. An empty path uses the built-in
// catalog.
type CatalogConfig struct {
	ItemsPath string `yaml:"items_path" env:"PORTFOLIO_ITEMS"`
	Watch     bool   `yaml:"watch" env:"PORTFOLIO_WATCH"`
}

// PreferencesConfig locates the persisted viewer preferences.
type PreferencesConfig struct {
	Path string `yaml:"path" env:"PORTFOLIO_PREFS"`
}

// UIConfig configures the terminal host.
type UIConfig struct {
	Theme string `yaml:"theme" env:"PORTFOLIO_THEME"` // light, dark, system

	// CellWidthPx converts terminal columns to pixels for breakpoints and
	// swipe distances.
	CellWidthPx int  `yaml:"cell_width_px"`
	AltScreen   bool `yaml:"alt_screen"`
	Mouse       bool `yaml:"mouse"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"PORTFOLIO_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"PORTFOLIO_LOG_FORMAT"` // json, text
	File   string `yaml:"file" env:"PORTFOLIO_LOG_FILE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Carousel: CarouselConfig{
			Interval:      "5s",
			AnnounceDelay: "500ms",
			SwipeDistance: carousel.DefaultSwipeThresholds.Distance,
			SwipeVelocity: carousel.DefaultSwipeThresholds.Velocity,
		},
		Catalog: CatalogConfig{
			Watch: true,
		},
		Preferences: PreferencesConfig{
			Path: defaultPreferencesPath(),
		},
		UI: UIConfig{
			Theme:       "system",
			CellWidthPx: 8,
			AltScreen:   true,
			Mouse:       true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies PORTFOLIO_* environment variables. Unset
// variables leave the loaded values alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Carousel.Interval); err != nil {
		return fmt.Errorf("carousel.interval: %w", err)
	}
	if c.GetInterval() <= 0 {
		return fmt.Errorf("carousel.interval must be positive, got %q", c.Carousel.Interval)
	}
	if c.Carousel.SwipeDistance < 0 || c.Carousel.SwipeVelocity < 0 {
		return fmt.Errorf("swipe thresholds must not be negative")
	}
	switch c.UI.Theme {
	case "", "light", "dark", "system":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	return nil
}

// GetInterval returns the autoplay interval as a duration.
func (c *Config) GetInterval() time.Duration {
	d, err := time.ParseDuration(c.Carousel.Interval)
	if err != nil {
		return carousel.DefaultInterval
	}
	return d
}

// GetAnnounceDelay returns the announcement quiet period as a duration.
func (c *Config) GetAnnounceDelay() time.Duration {
	d, err := time.ParseDuration(c.Carousel.AnnounceDelay)
	if err != nil || d <= 0 {
		return carousel.DefaultAnnounceDelay
	}
	return d
}

// SwipeThresholds returns the configured drag thresholds.
func (c *Config) SwipeThresholds() carousel.SwipeThresholds {
	return carousel.SwipeThresholds{
		Distance: c.Carousel.SwipeDistance,
		Velocity: c.Carousel.SwipeVelocity,
	}
}

// CellWidth returns the pixel width of one terminal column.
func (c *Config) CellWidth() int {
	if c.UI.CellWidthPx <= 0 {
		return 8
	}
	return c.UI.CellWidthPx
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".portfolio", "preferences.json")
	}
	return filepath.Join(dir, "portfolio", "preferences.json")
}
