package snake

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gridsnake/internal/core"
)

// ErrInvalidConfig is returned for configurations that cannot form a board.
var ErrInvalidConfig = errors.New("invalid snake config")

// Config controls the board and pacing of the snake simulation.
type Config struct {
	Width    int
	Height   int
	CellSize int

	TickInterval time.Duration
	Seed         int64

	// FoodAvoidsBody keeps food off body segments as well as the head.
	FoodAvoidsBody bool
}

// DefaultConfig returns the standard 20x15 board with 32 unit cells.
func DefaultConfig() Config {
	return Config{
		Width:        20,
		Height:       15,
		CellSize:     32,
		TickInterval: core.DefaultTickInterval,
		Seed:         1337,
	}
}

// Validate reports whether the config describes a usable board.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

// Grid returns the board geometry described by c.
func (c Config) Grid() core.Grid {
	return core.NewGrid(c.Width, c.Height, c.CellSize)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values fall back to defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, value := range cfg {
		_ = c.Apply(key, value)
	}
	return c
}

// Apply sets the field named by key. Unknown keys, unparsable values and
// non-positive sizes or intervals are rejected and leave c unchanged.
func (c *Config) Apply(key, value string) error {
	switch key {
	case "w", "h", "cell", "tick_ms":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, parsed)
		}
		switch key {
		case "w":
			c.Width = parsed
		case "h":
			c.Height = parsed
		case "cell":
			c.CellSize = parsed
		case "tick_ms":
			c.TickInterval = time.Duration(parsed) * time.Millisecond
		}
	case "seed":
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
		}
		c.Seed = parsed
	case "food_avoids_body":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
		}
		c.FoodAvoidsBody = parsed
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
	}
	return nil
}
