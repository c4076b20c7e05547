// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cellab/lifegrid/life"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Board     BoardConfig     `yaml:"board"`
	UI        UIConfig        `yaml:"ui"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BoardConfig holds board geometry and the initial control values. FrameRate
// and SeedProbability are only starting positions for the sliders; once the
// window is up the sliders own them.
type BoardConfig struct {
	CellSize        int `yaml:"cell_size"`        // cell edge length in pixels
	FrameRate       int `yaml:"frame_rate"`       // generations per second, 1-100
	SeedProbability int `yaml:"seed_probability"` // percent chance a cell starts alive, 0-100
}

// UIConfig holds control panel settings.
type UIConfig struct {
	PanelWidth int `yaml:"panel_width"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // generations per stats window
}

// DerivedConfig holds values derived from loaded config.
type DerivedConfig struct {
	Cols, Rows int     // board dimensions in cells (floor-divided from the canvas)
	CellSize32 float32 // Board.CellSize as float32
	BoardW32   float32 // board pixel width
	BoardH32   float32 // board pixel height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config and clamps the
// control values to their slider ranges.
func (c *Config) computeDerived() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Board.CellSize)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d",
			c.Screen.Width, c.Screen.Height)
	}

	c.Board.SeedProbability = life.ClampProbability(c.Board.SeedProbability)
	if c.Board.FrameRate < 1 {
		c.Board.FrameRate = 1
	}
	if c.Board.FrameRate > 100 {
		c.Board.FrameRate = 100
	}

	// The board canvas is the window minus the control panel. Dimensions
	// are floor-divided so partial cells never render.
	canvasW := c.Screen.Width - c.UI.PanelWidth
	if canvasW < 0 {
		canvasW = 0
	}
	c.Derived.Cols = canvasW / c.Board.CellSize
	c.Derived.Rows = c.Screen.Height / c.Board.CellSize
	c.Derived.CellSize32 = float32(c.Board.CellSize)
	c.Derived.BoardW32 = float32(c.Derived.Cols * c.Board.CellSize)
	c.Derived.BoardH32 = float32(c.Derived.Rows * c.Board.CellSize)
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
