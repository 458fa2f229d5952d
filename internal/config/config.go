// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TABGRID_CONFIG"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Grid    GridConfig    `yaml:"grid"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	SelectionColor     string `yaml:"selection_color,omitempty"`
	TabTitleColor      string `yaml:"tab_title_color,omitempty"`
	TabBackgroundColor string `yaml:"tab_background_color,omitempty"`
	TabWidth           int    `yaml:"tab_width,omitempty"`
	NotifyOnSelect     bool   `yaml:"notify_on_select"`
}

// GridConfig sizes the grid cells. Fixed cell sizes win over fractions.
type GridConfig struct {
	// Columns and Rows divide the viewport into cells.
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	// Fixed cell size in terminal cells; zero means use the fractions.
	CellWidth  int `yaml:"cell_width,omitempty"`
	CellHeight int `yaml:"cell_height,omitempty"`
}

// CatalogConfig selects the item source.
type CatalogConfig struct {
	// Path to a catalog YAML file; empty uses the built-in demo catalog.
	Path       string `yaml:"path,omitempty"`
	InitialTab int    `yaml:"initial_tab,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path,omitempty"`
	Debug bool   `yaml:"debug"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			SelectionColor:     "#E65C21",
			TabBackgroundColor: "#3A3A3A",
			TabWidth:           14,
		},
		Grid: GridConfig{
			Columns: 5,
			Rows:    3,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "tabgrid")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
// TABGRID_CONFIG takes precedence over the default location.
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Template is written by WriteTemplate. Its values match DefaultConfig.
const Template = `# tabgrid configuration
# Location: ~/.config/tabgrid/config.yaml

ui:
  selection_color: "#E65C21"
  # tab_title_color: "#333333"
  tab_background_color: "#3A3A3A"
  tab_width: 14
  # Send a desktop notification when an item is opened
  notify_on_select: false

grid:
  # Cells per page; ignored when cell_width and cell_height are set
  columns: 5
  rows: 3
  # cell_width: 16
  # cell_height: 5

catalog:
  # Empty uses the built-in demo catalog
  # path: ~/catalog.yaml
  initial_tab: 0

log:
  # Defaults to tabgrid.log next to this file when debug is on
  # path: /tmp/tabgrid.log
  debug: false
`

// WriteTemplate writes the commented template to the config path and
// returns that path. An existing file is replaced.
func WriteTemplate() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// LogPath returns the log file to write to. Debug logging without a
// configured path goes to tabgrid.log in the config directory; otherwise an
// empty path means logs are discarded.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" || !c.Log.Debug {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tabgrid.log"), nil
}

// Validate checks colors and grid sizing.
func (c *Config) Validate() error {
	colors := map[string]string{
		"ui.selection_color":      c.UI.SelectionColor,
		"ui.tab_title_color":      c.UI.TabTitleColor,
		"ui.tab_background_color": c.UI.TabBackgroundColor,
	}
	for field, value := range colors {
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%w: %s %q is not a hex color", ErrInvalidConfig, field, value)
		}
	}

	g := c.Grid
	if g.CellWidth < 0 || g.CellHeight < 0 {
		return fmt.Errorf("%w: negative cell size %dx%d", ErrInvalidConfig, g.CellWidth, g.CellHeight)
	}
	if (g.CellWidth == 0) != (g.CellHeight == 0) {
		return fmt.Errorf("%w: grid.cell_width and grid.cell_height must be set together", ErrInvalidConfig)
	}
	if !c.FixedCellSize() && (g.Columns < 1 || g.Rows < 1) {
		return fmt.Errorf("%w: grid.columns and grid.rows must be at least 1", ErrInvalidConfig)
	}
	if c.UI.TabWidth < 0 {
		return fmt.Errorf("%w: negative ui.tab_width", ErrInvalidConfig)
	}
	if c.Catalog.InitialTab < 0 {
		return fmt.Errorf("%w: negative catalog.initial_tab", ErrInvalidConfig)
	}
	return nil
}

// FixedCellSize reports whether cells have a configured size instead of a
// share of the viewport.
func (c *Config) FixedCellSize() bool {
	return c.Grid.CellWidth > 0 && c.Grid.CellHeight > 0
}

// CellSize returns the cell size for a viewport of width x height.
func (c *Config) CellSize(width, height int) (int, int) {
	if c.FixedCellSize() {
		return c.Grid.CellWidth, c.Grid.CellHeight
	}
	return width / c.Grid.Columns, height / c.Grid.Rows
}
