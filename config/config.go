// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arrows    []ArrowConfig   `yaml:"arrows"`
	Colors    ColorsConfig    `yaml:"colors"`
	HUD       HUDConfig       `yaml:"hud"`
	Overlays  OverlaysConfig  `yaml:"overlays"`
	Keys      KeysConfig      `yaml:"keys"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Sweep     SweepConfig     `yaml:"sweep"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
	Title     string `yaml:"title"`
}

// Point is a screen position in pixels (Y down).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ArrowConfig holds the initial placement of one arrow.
// The first entry is the red (primary) arrow, the second the blue one.
type ArrowConfig struct {
	Name  string `yaml:"name"`
	Start Point  `yaml:"start"`
	End   Point  `yaml:"end"`
	Color RGBA   `yaml:"color"`
}

// RGBA is an 8-bit color.
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// ColorsConfig holds non-arrow colors.
type ColorsConfig struct {
	Background   RGBA `yaml:"background"`
	DotProduct   RGBA `yaml:"dot_product"` // not green, the primary arrow is red
	CrossProduct RGBA `yaml:"cross_product"`
	Delta        RGBA `yaml:"delta"`
}

// HUDConfig holds text layout.
type HUDConfig struct {
	FontSize int `yaml:"font_size"`
	Margin   int `yaml:"margin"`
}

// OverlaysConfig holds the initial state of each toggleable overlay.
type OverlaysConfig struct {
	DotProjection   bool `yaml:"dot_projection"`
	CrossProjection bool `yaml:"cross_projection"`
	SecondaryArrow  bool `yaml:"secondary_arrow"`
	AngleBetween    bool `yaml:"angle_between"`
	Readout         bool `yaml:"readout"`
	Prompts         bool `yaml:"prompts"`
}

// KeysConfig holds key bindings. Each binding is a single letter A-Z.
type KeysConfig struct {
	RedStart        string `yaml:"red_start"`
	RedEnd          string `yaml:"red_end"`
	BlueStart       string `yaml:"blue_start"`
	BlueEnd         string `yaml:"blue_end"`
	DotProjection   string `yaml:"dot_projection"`
	CrossProjection string `yaml:"cross_projection"`
	SecondaryArrow  string `yaml:"secondary_arrow"`
	AngleBetween    string `yaml:"angle_between"`
	Readout         string `yaml:"readout"`
	Prompts         string `yaml:"prompts"`
}

// TelemetryConfig holds readout export parameters.
type TelemetryConfig struct {
	SampleEvery int `yaml:"sample_every"` // Frames between CSV rows (0 = off)
	LogEvery    int `yaml:"log_every"`    // Frames between slog stats lines with -log-stats
}

// SweepConfig holds headless sweep parameters.
type SweepConfig struct {
	Frames int     `yaml:"frames"` // Frames per full revolution of the blue arrow
	Radius float64 `yaml:"radius"` // Cursor orbit radius around the blue start
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	FontSize  int32
	Margin    int32
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		defaultArrows := cfg.Arrows
		// Only overwrites fields present in file. A present arrows list replaces the default one.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		cfg.fillArrowDefaults(defaultArrows)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// fillArrowDefaults copies name and color from the default arrow at the same
// index when a user arrow leaves them out.
func (c *Config) fillArrowDefaults(defaults []ArrowConfig) {
	for i := range c.Arrows {
		if i >= len(defaults) {
			break
		}
		if c.Arrows[i].Name == "" {
			c.Arrows[i].Name = defaults[i].Name
		}
		if c.Arrows[i].Color == (RGBA{}) {
			c.Arrows[i].Color = defaults[i].Color
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS < 0 {
		return fmt.Errorf("screen.target_fps must not be negative, got %d", c.Screen.TargetFPS)
	}
	if len(c.Arrows) != 2 {
		return fmt.Errorf("exactly 2 arrows required, got %d", len(c.Arrows))
	}
	for i, a := range c.Arrows {
		if a.Color.A == 0 {
			return fmt.Errorf("arrows[%d].color is fully transparent", i)
		}
	}
	if c.HUD.FontSize <= 0 {
		return fmt.Errorf("hud.font_size must be positive, got %d", c.HUD.FontSize)
	}
	if c.Telemetry.SampleEvery < 0 || c.Telemetry.LogEvery < 0 {
		return fmt.Errorf("telemetry intervals must not be negative")
	}
	if c.Sweep.Frames <= 0 {
		return fmt.Errorf("sweep.frames must be positive, got %d", c.Sweep.Frames)
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if !IsKeyName(b.Key) {
			return fmt.Errorf("keys.%s: %q is not a single letter A-Z", b.Name, b.Key)
		}
		if other, ok := seen[b.Key]; ok {
			return fmt.Errorf("keys.%s: %q already bound to %s", b.Name, b.Key, other)
		}
		seen[b.Key] = b.Name
	}
	return nil
}

// Binding pairs a config key name with its bound letter.
type Binding struct {
	Name string
	Key  string
}

// Bindings lists every key binding in declaration order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{"red_start", k.RedStart},
		{"red_end", k.RedEnd},
		{"blue_start", k.BlueStart},
		{"blue_end", k.BlueEnd},
		{"dot_projection", k.DotProjection},
		{"cross_projection", k.CrossProjection},
		{"secondary_arrow", k.SecondaryArrow},
		{"angle_between", k.AngleBetween},
		{"readout", k.Readout},
		{"prompts", k.Prompts},
	}
}

// IsKeyName reports whether s names a bindable key.
func IsKeyName(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FontSize = int32(c.HUD.FontSize)
	c.Derived.Margin = int32(c.HUD.Margin)
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
