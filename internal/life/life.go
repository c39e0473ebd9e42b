// Package life implements Conway's Game of Life on a toroidal boolean grid.
//
// An Engine owns its grid and generation counter and does no rendering,
// timing or I/O. Callers mutate it through the exported operations and then
// read Cells, Snapshot, Population and Generation to redraw.
package life

import (
	"life-canvas/internal/core"
)

// DefaultDensity is the probability that Randomize marks a cell alive.
const DefaultDensity = 0.3

// Engine is a Game of Life board with a fixed size.
type Engine struct {
	cur *core.Grid
	nxt *core.Grid

	generation int
	running    bool
	density    float64
	rng        *core.RNG
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithSeed seeds the RNG used by Randomize.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = core.NewRNG(seed) }
}

// WithDensity sets the live-cell probability used by Randomize.
func WithDensity(p float64) Option {
	return func(e *Engine) { e.SetDensity(p) }
}

// New returns a dead board with the provided dimensions.
func New(rows, cols int, opts ...Option) *Engine {
	e := &Engine{
		cur:     core.NewGrid(rows, cols),
		nxt:     core.NewGrid(rows, cols),
		density: DefaultDensity,
		rng:     core.NewRNG(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromViewport sizes a board to fit a pixel viewport with square cells of
// cellSize pixels. Partial cells at the right and bottom edges are dropped.
func FromViewport(widthPx, heightPx, cellSize int, opts ...Option) *Engine {
	if cellSize <= 0 {
		return New(0, 0, opts...)
	}
	return New(heightPx/cellSize, widthPx/cellSize, opts...)
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cur.Cols, H: e.cur.Rows} }

// Rows returns the number of grid rows.
func (e *Engine) Rows() int { return e.cur.Rows }

// Cols returns the number of grid columns.
func (e *Engine) Cols() int { return e.cur.Cols }

// Cells exposes the current grid values in row-major order. The slice is
// only valid until the next mutating call.
func (e *Engine) Cells() []bool { return e.cur.Cells() }

// Alive reports whether a cell is alive. Out-of-range cells read as dead.
func (e *Engine) Alive(row, col int) bool { return e.cur.At(row, col) }

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Population counts live cells.
func (e *Engine) Population() int { return e.cur.Count() }

// Toggle flips a cell. Out-of-range coordinates are ignored.
func (e *Engine) Toggle(row, col int) {
	if !e.cur.InBounds(row, col) {
		return
	}
	e.cur.Set(row, col, !e.cur.At(row, col))
}

// Paint marks a cell alive. Out-of-range coordinates are ignored.
func (e *Engine) Paint(row, col int) {
	e.cur.Set(row, col, true)
}

// Step advances the board by one generation.
func (e *Engine) Step() {
	e.generation++
	rows, cols := e.cur.Rows, e.cur.Cols
	if rows == 0 || cols == 0 {
		return
	}
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (row + dr + rows) % rows
					nc := (col + dc + cols) % cols
					if cur[nr*cols+nc] {
						neighbors++
					}
				}
			}
			idx := row*cols + col
			nxt[idx] = Next(cur[idx], neighbors)
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// StepN advances the board n generations.
func (e *Engine) StepN(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Reset kills every cell and zeroes the generation counter.
func (e *Engine) Reset() {
	e.cur.Clear()
	e.generation = 0
}

// Density returns the live-cell probability used by Randomize.
func (e *Engine) Density() float64 { return e.density }

// SetDensity changes the live-cell probability used by Randomize. Values are
// clamped to [0, 1].
func (e *Engine) SetDensity(p float64) {
	e.density = min(max(p, 0), 1)
}

// Randomize fills the board at the configured density.
func (e *Engine) Randomize() {
	e.RandomizeDensity(e.density)
}

// RandomizeDensity marks each cell alive independently with probability p
// and zeroes the generation counter.
func (e *Engine) RandomizeDensity(p float64) {
	e.rng.FillChance(e.cur.Cells(), p)
	e.generation = 0
}

// LoadPattern clears the board and stamps cells centred on it. The
// pattern's bounding box is normalised so offsets need not start at zero.
// Cells that land outside the board are dropped.
func (e *Engine) LoadPattern(cells []core.Offset) {
	e.Reset()
	if len(cells) == 0 {
		return
	}
	minRow, minCol, height, width := core.BoundsOf(cells)
	startRow := floorDiv(e.cur.Rows-height, 2) - minRow
	startCol := floorDiv(e.cur.Cols-width, 2) - minCol
	for _, c := range cells {
		e.cur.Set(c.Row+startRow, c.Col+startCol, true)
	}
}

// Start marks the board as running. Scheduling steps is left to the caller.
func (e *Engine) Start() { e.running = true }

// Stop marks the board as stopped.
func (e *Engine) Stop() { e.running = false }

// Running reports whether the board is marked as running.
func (e *Engine) Running() bool { return e.running }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
