package patterns

import (
	"slices"
	"testing"

	"life-canvas/internal/core"
	"life-canvas/internal/life"
)

func TestDefaultNames(t *testing.T) {
	names := Default().Names()
	if len(names) != 12 {
		t.Fatalf("got %d presets, want 12: %v", len(names), names)
	}
	if names[0] != "glider" {
		t.Fatalf("first preset = %q, want glider", names[0])
	}
	for _, name := range names {
		p, ok := Default().Pattern(name)
		if !ok {
			t.Fatalf("listed preset %q not found", name)
		}
		if len(p.Cells) == 0 {
			t.Fatalf("preset %q has no cells", name)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	if _, ok := Default().Pattern("  Glider "); !ok {
		t.Fatal("case-insensitive lookup failed")
	}
	if _, ok := Default().Pattern("spaceship-x"); ok {
		t.Fatal("unknown pattern was found")
	}
}

func TestTableIsImmutable(t *testing.T) {
	p, _ := Default().Pattern("block")
	p.Cells[0] = core.Offset{Row: 99, Col: 99}
	again, _ := Default().Pattern("block")
	if again.Cells[0] == (core.Offset{Row: 99, Col: 99}) {
		t.Fatal("mutating a returned pattern changed the table")
	}

	names := Default().Names()
	names[0] = "changed"
	if Default().Names()[0] != "glider" {
		t.Fatal("mutating Names() changed the table")
	}
}

func TestNewTableDuplicates(t *testing.T) {
	tbl := NewTable(
		core.Pattern{Name: "a", Cells: parse("#")},
		core.Pattern{Name: "b", Cells: parse("##")},
		core.Pattern{Name: "A", Cells: parse("###")},
		core.Pattern{Name: " "},
	)
	if got, want := tbl.Names(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	p, _ := tbl.Pattern("a")
	if len(p.Cells) != 3 {
		t.Fatalf("duplicate did not replace: %d cells", len(p.Cells))
	}
}

func TestPresetsBehave(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
		{"pulsar", 3},
		{"pentadecathlon", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := Default().Pattern(tt.name)
			e := life.New(32, 32)
			e.LoadPattern(p.Cells)
			start := e.Snapshot()
			e.StepN(tt.period)
			if !start.Equal(e.Snapshot()) {
				t.Fatalf("%s did not repeat after %d steps:\n%s", tt.name, tt.period, e.Snapshot())
			}
		})
	}
}

func TestGliderTravels(t *testing.T) {
	p, _ := Default().Pattern("glider")
	e := life.New(16, 16)
	e.LoadPattern(p.Cells)
	start := e.Snapshot()
	e.StepN(4)
	moved := e.Snapshot()
	if moved.Population != 5 {
		t.Fatalf("glider population = %d, want 5", moved.Population)
	}
	if start.Equal(moved) {
		t.Fatal("glider did not move")
	}
	// 16 rows / 1 cell per 4 generations brings it back to the start.
	e.StepN(4*16 - 4)
	if !start.Equal(e.Snapshot()) {
		t.Fatalf("glider did not wrap back to its origin:\n%s", e.Snapshot())
	}
}

func TestGunFitsDefaultBoard(t *testing.T) {
	p, _ := Default().Pattern("gosper-glider-gun")
	_, _, h, w := p.Bounds()
	if h != 9 || w != 36 {
		t.Fatalf("gun bounds = %dx%d, want 9x36", h, w)
	}
	if len(p.Cells) != 36 {
		t.Fatalf("gun has %d cells, want 36", len(p.Cells))
	}
}
