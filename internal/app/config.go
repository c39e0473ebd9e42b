package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"life-canvas/internal/core"
	"life-canvas/internal/life"
	"life-canvas/internal/session"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	CellSize    int
	TPS         int
	Seed        int64
	Density     float64
	Pattern     string
	Random      bool
	MetricsAddr string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		CellSize: 10,
		TPS:      session.DefaultTPS,
		Seed:     42,
		Density:  life.DefaultDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "board height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for randomize")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to load at startup")
	fs.BoolVar(&c.Random, "random", c.Random, "randomize the board at startup")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address (empty disables)")
}

// Validate checks that the configuration describes a usable board.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	} else if c.Width < c.CellSize || c.Height < c.CellSize {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than one %dpx cell", c.Width, c.Height, c.CellSize))
	}
	if c.TPS < session.MinTPS || c.TPS > session.MaxTPS {
		errs = append(errs, fmt.Errorf("tps %d outside [%d, %d]", c.TPS, session.MinTPS, session.MaxTPS))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0, 1]", c.Density))
	}
	if c.Pattern != "" && c.Random {
		errs = append(errs, errors.New("-pattern and -random are mutually exclusive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewEngine builds the board described by the configuration.
func (c *Config) NewEngine() *life.Engine {
	return life.FromViewport(c.Width, c.Height, c.CellSize, life.WithSeed(c.Seed), life.WithDensity(c.Density))
}

// NewSession builds the engine, wraps it in a session and applies the
// startup pattern or randomization. An unknown pattern name is an error.
func (c *Config) NewSession(patterns core.PatternSource, opts ...session.Option) (*session.Session, error) {
	opts = append([]session.Option{session.WithTPS(c.TPS)}, opts...)
	sess := session.New(c.NewEngine(), patterns, c.CellSize, opts...)
	switch {
	case c.Pattern != "":
		if !sess.LoadPattern(c.Pattern) {
			return nil, fmt.Errorf("unknown pattern %q (have %s)", c.Pattern, strings.Join(patterns.Names(), ", "))
		}
	case c.Random:
		sess.Randomize()
	}
	return sess, nil
}
