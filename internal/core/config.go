package core

import "time"

// RuntimeConfig contains the resolved settings handed to the render loop.
// It is built from the YAML config and the command-line flags.
type RuntimeConfig struct {
	ScreenW    int           // Window width in pixels (cells for terminal backends)
	ScreenH    int           // Window height
	FrameDelay time.Duration // Pause after each presented frame
	MaxFrames  int           // Stop after this many frames (0 = until quit)
	Seed       int64         // RNG seed for reproducible starfields
}
