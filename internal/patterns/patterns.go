// Package patterns holds the preset shapes that can be loaded onto a board.
package patterns

import (
	"slices"
	"strings"

	"life-canvas/internal/core"
)

// Table is an immutable pattern lookup implementing core.PatternSource.
type Table struct {
	order  []string
	byName map[string]core.Pattern
}

var _ core.PatternSource = (*Table)(nil)

// NewTable builds a table from patterns. Later duplicates replace earlier
// ones but keep the first position.
func NewTable(ps ...core.Pattern) *Table {
	t := &Table{byName: make(map[string]core.Pattern, len(ps))}
	for _, p := range ps {
		key := normalize(p.Name)
		if key == "" {
			continue
		}
		if _, ok := t.byName[key]; !ok {
			t.order = append(t.order, key)
		}
		p.Cells = slices.Clone(p.Cells)
		t.byName[key] = p
	}
	return t
}

// Pattern returns a copy of the named pattern. Lookup ignores case and
// surrounding whitespace.
func (t *Table) Pattern(name string) (core.Pattern, bool) {
	p, ok := t.byName[normalize(name)]
	if !ok {
		return core.Pattern{}, false
	}
	p.Cells = slices.Clone(p.Cells)
	return p, true
}

// Names lists pattern names in table order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Default returns the built-in preset table.
func Default() *Table { return defaultTable }

var defaultTable = NewTable(
	core.Pattern{
		Name:        "glider",
		Description: "Smallest spaceship, travels diagonally every 4 generations",
		Cells:       parse(".#.", "..#", "###"),
	},
	core.Pattern{
		Name:        "blinker",
		Description: "Period 2 oscillator",
		Cells:       parse("###"),
	},
	core.Pattern{
		Name:        "block",
		Description: "Still life",
		Cells:       parse("##", "##"),
	},
	core.Pattern{
		Name:        "toad",
		Description: "Period 2 oscillator",
		Cells:       parse(".###", "###."),
	},
	core.Pattern{
		Name:        "beacon",
		Description: "Period 2 oscillator",
		Cells:       parse("##..", "##..", "..##", "..##"),
	},
	core.Pattern{
		Name:        "lwss",
		Description: "Lightweight spaceship",
		Cells:       parse(".#..#", "#....", "#...#", "####."),
	},
	core.Pattern{
		Name:        "pulsar",
		Description: "Period 3 oscillator",
		Cells: parse(
			"..###...###..",
			".............",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			"..###...###..",
			".............",
			"..###...###..",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			".............",
			"..###...###..",
		),
	},
	core.Pattern{
		Name:        "pentadecathlon",
		Description: "Period 15 oscillator",
		Cells:       parse("..#....#..", "##.####.##", "..#....#.."),
	},
	core.Pattern{
		Name:        "r-pentomino",
		Description: "Methuselah that stabilises after 1103 generations",
		Cells:       parse(".##", "##.", ".#."),
	},
	core.Pattern{
		Name:        "diehard",
		Description: "Vanishes after 130 generations",
		Cells:       parse("......#.", "##......", ".#...###"),
	},
	core.Pattern{
		Name:        "acorn",
		Description: "Methuselah that runs for 5206 generations",
		Cells:       parse(".#.....", "...#...", "##..###"),
	},
	core.Pattern{
		Name:        "gosper-glider-gun",
		Description: "Emits a glider every 30 generations",
		Cells: parse(
			"........................#...........",
			"......................#.#...........",
			"............##......##............##",
			"...........#...#....##............##",
			"##........#.....#...##..............",
			"##........#...#.##....#.#...........",
			"..........#.....#.......#...........",
			"...........#...#....................",
			"............##......................",
		),
	},
)

// parse turns rows of '#' (alive) and '.' (dead) into offsets.
func parse(rows ...string) []core.Offset {
	var cells []core.Offset
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				cells = append(cells, core.Offset{Row: r, Col: c})
			}
		}
	}
	return cells
}
