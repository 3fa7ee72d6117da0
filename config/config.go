// Package config provides configuration loading and access for the starfield.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen   ScreenConfig             `yaml:"screen"`
	Field    FieldConfig              `yaml:"field"`
	Warp     WarpConfig               `yaml:"warp"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`

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

// FieldConfig holds starfield parameters.
type FieldConfig struct {
	StarCount int     `yaml:"star_count"` // Number of stars in the field
	PointSize float64 `yaml:"point_size"` // Circle radius at rest speed
	LineWidth float64 `yaml:"line_width"` // Streak stroke width
}

// WarpConfig holds warp slider parameters.
// The slider exposes a gentle [min, max] range; the simulation maps it
// to a wider internal speed range for visible trail variation.
type WarpConfig struct {
	SliderMin  float64 `yaml:"slider_min"`
	SliderMax  float64 `yaml:"slider_max"`
	SliderStep float64 `yaml:"slider_step"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
}

// ProfileConfig holds a device-tier parameter set. A profile is selected
// once at startup and overlays the base field/screen settings.
type ProfileConfig struct {
	StarCount  int     `yaml:"star_count"`
	TargetFPS  int     `yaml:"target_fps"`
	PointSize  float64 `yaml:"point_size"`
	SliderStep float64 `yaml:"slider_step"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Window size in seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames per perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	HalfW32   float32 // Screen.Width / 2 as float32
	HalfH32   float32 // Screen.Height / 2 as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// ApplyProfile overlays the named device profile onto the base settings.
// Unset profile fields leave the base value untouched.
func (c *Config) ApplyProfile(name string) error {
	p, ok := c.Profiles[name]
	if !ok {
		return fmt.Errorf("unknown profile %q", name)
	}
	if p.StarCount > 0 {
		c.Field.StarCount = p.StarCount
	}
	if p.TargetFPS > 0 {
		c.Screen.TargetFPS = p.TargetFPS
	}
	if p.PointSize > 0 {
		c.Field.PointSize = p.PointSize
	}
	if p.SliderStep > 0 {
		c.Warp.SliderStep = p.SliderStep
	}
	c.computeDerived()
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.HalfW32 = float32(c.Screen.Width) / 2
	c.Derived.HalfH32 = float32(c.Screen.Height) / 2
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
