package config

import (
	_ "embed"
)

//go:embed defaults/starfield.yaml
var defaultStarfieldYAML []byte

// DefaultStarfieldConfig returns the default starfield configuration.
func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{
		Window: WindowConfig{
			Title:  "Starfield",
			Width:  640,
			Height: 480,
		},
		Icon: "resources/iconzilla.bmp",
		Stars: StarsConfig{
			Count:    64,
			Scale:    256,
			Spread:   10,
			MinSpeed: 1,
			MaxSpeed: 6,
		},
		Loop: LoopConfig{
			FrameDelayMS: 10,
			MaxFrames:    0,
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Foreground: "#ffffff",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarfieldYAML
}
