package app

import (
	"flag"
	"strings"
	"testing"

	"life-canvas/internal/core"
	"life-canvas/internal/patterns"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-width", "400", "-height", "300", "-cell", "8", "-tps", "30", "-pattern", "pulsar", "-density", "0.5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 || cfg.CellSize != 8 || cfg.TPS != 30 || cfg.Pattern != "pulsar" || cfg.Density != 0.5 {
		t.Fatalf("config = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	e := cfg.NewEngine()
	if e.Size() != (core.Size{W: 50, H: 37}) {
		t.Fatalf("engine size = %+v, want 50x37", e.Size())
	}
	if e.Density() != 0.5 {
		t.Fatalf("engine density = %v", e.Density())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "must be positive"},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, "cell size 0"},
		{"cell too large", func(c *Config) { c.CellSize = 1000 }, "smaller than one"},
		{"tps", func(c *Config) { c.TPS = 0 }, "tps 0"},
		{"density", func(c *Config) { c.Density = 1.5 }, "density 1.5"},
		{"pattern and random", func(c *Config) { c.Pattern = "glider"; c.Random = true }, "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "pulsar"
	sess, err := cfg.NewSession(patterns.Default())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if st := sess.Stats(); st.Population != 48 || st.TPS != cfg.TPS || st.Pattern != "pulsar" {
		t.Fatalf("stats = %+v", st)
	}

	cfg.Pattern = "missing"
	if _, err := cfg.NewSession(patterns.Default()); err == nil || !strings.Contains(err.Error(), "glider") {
		t.Fatalf("unknown pattern error = %v", err)
	}

	cfg.Pattern = ""
	cfg.Random = true
	sess, err = cfg.NewSession(patterns.Default())
	if err != nil || sess.Stats().Population == 0 {
		t.Fatalf("random session: err %v, population %d", err, sess.Stats().Population)
	}
}
