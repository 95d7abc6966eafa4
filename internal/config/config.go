// Package config loads the particle field settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/particle-field/internal/particle"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Soundtrack meter
	MeterBands  = 64
	MeterHeight = 40

	// Resize events are coalesced within this window (milliseconds).
	ResizeThrottleMillis = 250
	// At or below this width the hero uses the mobile layout: no cursor
	// follower and no typed title.
	CompactWidth = 768

	ColorShiftSpeed = 0.01
)

// FileName is the default config file looked up in the user's home directory.
const FileName = ".particlefield.yaml"

// Config is the full application configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Field   FieldConfig   `yaml:"field"`
	Hero    HeroConfig    `yaml:"hero"`
	Logging LoggingConfig `yaml:"logging"`

	// Soundtrack is an audio file played on start. Empty means none.
	Soundtrack string `yaml:"soundtrack,omitempty"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// FieldConfig mirrors particle.Options in file form.
type FieldConfig struct {
	ParticleCount int        `yaml:"particle_count"`
	LinkDistance  float64    `yaml:"link_distance"`
	LinkAlpha     float64    `yaml:"link_alpha"`
	LinkWidth     float64    `yaml:"link_width"`
	ParticleColor [3]uint8   `yaml:"particle_color"`
	VelocityRange float64    `yaml:"velocity_range"`
	SizeRange     [2]float64 `yaml:"size_range"`
	OpacityRange  [2]float64 `yaml:"opacity_range"`
	SpatialIndex  bool       `yaml:"spatial_index"`
	Seed          uint64     `yaml:"seed"`
}

// HeroConfig is the foreground content drawn over the field.
type HeroConfig struct {
	Title   string        `yaml:"title"`
	Stats   []StatConfig  `yaml:"stats"`
	Skills  []SkillConfig `yaml:"skills"`
	Gallery []ArtConfig   `yaml:"gallery"`
}

type StatConfig struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
	Plus   bool   `yaml:"plus"`
}

type SkillConfig struct {
	Label string `yaml:"label"`
	Level int    `yaml:"level"` // percent
}

type ArtConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type LoggingConfig struct {
	// Level is "info" (default) or "debug".
	Level string `yaml:"level"`
}

// Default returns the stock configuration.
func Default() *Config {
	o := particle.DefaultOptions()
	return &Config{
		Window: WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: "Portfolio"},
		Field: FieldConfig{
			ParticleCount: o.Count,
			LinkDistance:  o.LinkDistance,
			LinkAlpha:     o.LinkAlpha,
			LinkWidth:     o.LinkWidth,
			ParticleColor: [3]uint8{o.Color.R, o.Color.G, o.Color.B},
			VelocityRange: o.VelocityRange,
			SizeRange:     [2]float64{o.SizeRange.Min, o.SizeRange.Max},
			OpacityRange:  [2]float64{o.OpacityRange.Min, o.OpacityRange.Max},
		},
		Hero: HeroConfig{
			Title: "Hello, I make things",
			Stats: []StatConfig{
				{Label: "Projects", Target: 50, Plus: true},
				{Label: "Years", Target: 5},
				{Label: "Artworks", Target: 120, Plus: true},
			},
			Skills: []SkillConfig{
				{Label: "Go", Level: 90},
				{Label: "Illustration", Level: 75},
				{Label: "Animation", Level: 60},
			},
			Gallery: []ArtConfig{
				{Title: "Dusk", Description: "Digital painting", Category: "digital"},
				{Title: "Harbour", Description: "Ink on paper", Category: "traditional"},
				{Title: "Loop", Description: "Frame-by-frame study", Category: "animation"},
				{Title: "Static", Description: "Generative piece", Category: "digital"},
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path on top of Default and applies
// environment overrides. An empty path means ~/.particlefield.yaml; a
// missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, FileName)
		}
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PARTICLEFIELD_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PARTICLEFIELD_COUNT: %w", err)
		}
		c.Field.ParticleCount = n
	}
	if v := os.Getenv("PARTICLEFIELD_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PARTICLEFIELD_SEED: %w", err)
		}
		c.Field.Seed = n
	}
	if v := os.Getenv("PARTICLEFIELD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Options converts the field section to simulator options.
func (c *Config) Options() particle.Options {
	f := c.Field
	return particle.Options{
		Count:         f.ParticleCount,
		LinkDistance:  f.LinkDistance,
		LinkAlpha:     f.LinkAlpha,
		LinkWidth:     f.LinkWidth,
		Color:         color.RGBA{R: f.ParticleColor[0], G: f.ParticleColor[1], B: f.ParticleColor[2], A: 255},
		VelocityRange: f.VelocityRange,
		SizeRange:     particle.Range{Min: f.SizeRange[0], Max: f.SizeRange[1]},
		OpacityRange:  particle.Range{Min: f.OpacityRange[0], Max: f.OpacityRange[1]},
		SpatialIndex:  f.SpatialIndex,
		Seed:          f.Seed,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if err := c.Options().Validate(); err != nil {
		return err
	}
	for _, s := range c.Hero.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("skill %q level %d outside 0-100", s.Label, s.Level)
		}
	}
	for _, s := range c.Hero.Stats {
		if s.Target < 0 {
			return fmt.Errorf("stat %q target %d is negative", s.Label, s.Target)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "info", "debug":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
