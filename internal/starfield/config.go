package starfield

import "fmt"

// Config holds the simulation constants.
type Config struct {
	Scale    int // Initial depth and projection scale
	Spread   int // Lateral offsets are drawn from [-Spread, Spread]
	MinSpeed int // Speeds are drawn from [MinSpeed, MaxSpeed]
	MaxSpeed int
}

// DefaultConfig returns the classic starfield constants.
func DefaultConfig() Config {
	return Config{
		Scale:    256,
		Spread:   10,
		MinSpeed: 1,
		MaxSpeed: 6,
	}
}

// Validate checks that the constants keep depth positive and ranges non-empty.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("starfield: scale must be positive, got %d", c.Scale)
	}
	if c.Spread < 0 {
		return fmt.Errorf("starfield: spread must not be negative, got %d", c.Spread)
	}
	if c.MinSpeed < 1 {
		return fmt.Errorf("starfield: min speed must be at least 1, got %d", c.MinSpeed)
	}
	if c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("starfield: max speed %d is below min speed %d", c.MaxSpeed, c.MinSpeed)
	}
	return nil
}
