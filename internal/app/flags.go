package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"gridsnake/internal/sims/snake"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width          int
	Height         int
	Cell           int
	Tick           time.Duration
	Seed           int64
	FoodAvoidsBody bool

	TPS int
	HUD int

	// Overrides holds raw key=value pairs applied after the typed flags.
	Overrides kvList
}

// NewConfig returns a Config populated from the snake defaults.
func NewConfig() *Config {
	def := snake.DefaultConfig()
	return &Config{
		Width:          def.Width,
		Height:         def.Height,
		Cell:           def.CellSize,
		Tick:           def.TickInterval,
		Seed:           def.Seed,
		FoodAvoidsBody: def.FoodAvoidsBody,
		TPS:            60,
		HUD:            220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in world units (and pixels)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.FoodAvoidsBody, "food-avoids-body", c.FoodAvoidsBody, "never place food on the body")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "override a config key (key=value, repeatable)")
}

// SnakeConfig resolves the flags into a validated simulation config. Typed
// flags are taken as given and overrides are parsed strictly, so a bad value
// is reported instead of replaced by a default.
func (c *Config) SnakeConfig() (snake.Config, error) {
	cfg := snake.Config{
		Width:          c.Width,
		Height:         c.Height,
		CellSize:       c.Cell,
		TickInterval:   c.Tick,
		Seed:           c.Seed,
		FoodAvoidsBody: c.FoodAvoidsBody,
	}
	for _, kv := range c.Overrides {
		if err := cfg.Apply(kv.key, kv.value); err != nil {
			return snake.Config{}, fmt.Errorf("flags: -set %s: %w", kv.key, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return snake.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

type kv struct {
	key   string
	value string
}

type kvList []kv

func (l *kvList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, kv := range *l {
		parts = append(parts, kv.key+"="+kv.value)
	}
	return strings.Join(parts, ",")
}

func (l *kvList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	*l = append(*l, kv{key: key, value: strings.TrimSpace(value)})
	return nil
}
