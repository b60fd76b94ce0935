// Package config provides YAML-based configuration loading for the starfield.
package config

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/starfield"
)

// StarfieldConfig contains all configuration for the starfield program.
type StarfieldConfig struct {
	Window WindowConfig `yaml:"window"`
	Icon   string       `yaml:"icon"` // Path to the window icon bitmap
	Stars  StarsConfig  `yaml:"stars"`
	Loop   LoopConfig   `yaml:"loop"`
	Colors ColorsConfig `yaml:"colors"`
}

// WindowConfig defines the window parameters.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// StarsConfig defines the simulation constants.
type StarsConfig struct {
	Count    int `yaml:"count"`
	Scale    int `yaml:"scale"`     // Initial depth and projection scale
	Spread   int `yaml:"spread"`    // Lateral offsets drawn from [-spread, spread]
	MinSpeed int `yaml:"min_speed"` // Depth decrement drawn from [min_speed, max_speed]
	MaxSpeed int `yaml:"max_speed"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FrameDelayMS int `yaml:"frame_delay_ms"`
	MaxFrames    int `yaml:"max_frames"` // 0 = run until quit
}

// ColorsConfig defines the draw colors as hex strings ("#rrggbb").
type ColorsConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// Simulation returns the starfield constants.
func (c StarfieldConfig) Simulation() starfield.Config {
	return starfield.Config{
		Scale:    c.Stars.Scale,
		Spread:   c.Stars.Spread,
		MinSpeed: c.Stars.MinSpeed,
		MaxSpeed: c.Stars.MaxSpeed,
	}
}

// Runtime returns the resolved runtime settings for the render loop.
func (c StarfieldConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    c.Window.Width,
		ScreenH:    c.Window.Height,
		FrameDelay: time.Duration(c.Loop.FrameDelayMS) * time.Millisecond,
		MaxFrames:  c.Loop.MaxFrames,
		Seed:       seed,
	}
}

// Palette parses the background and foreground colors.
func (c ColorsConfig) Palette() (bg, fg core.Color, err error) {
	if bg, err = parseColor(c.Background); err != nil {
		return bg, fg, fmt.Errorf("config: background: %w", err)
	}
	if fg, err = parseColor(c.Foreground); err != nil {
		return bg, fg, fmt.Errorf("config: foreground: %w", err)
	}
	return bg, fg, nil
}

func parseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, err
	}
	r, g, b := c.RGB255()
	return core.RGBA(r, g, b, 255), nil
}

// Validate checks the config for values the program cannot run with.
func (c StarfieldConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("config: star count must not be negative, got %d", c.Stars.Count)
	}
	if c.Loop.FrameDelayMS < 0 {
		return fmt.Errorf("config: frame delay must not be negative, got %d", c.Loop.FrameDelayMS)
	}
	if c.Loop.MaxFrames < 0 {
		return fmt.Errorf("config: max frames must not be negative, got %d", c.Loop.MaxFrames)
	}
	if err := c.Simulation().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, _, err := c.Colors.Palette(); err != nil {
		return err
	}
	return nil
}
