package core

// Grid stores a rows×cols boolean grid in row-major order. Its dimensions
// never change after construction.
type Grid struct {
	Rows, Cols int
	data       []bool
}

// NewGrid allocates a dead grid. Non-positive dimensions produce an empty
// grid that every operation treats as a no-op.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		rows, cols = 0, 0
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	if g.Rows == 0 || g.Cols == 0 {
		return 0, 0
	}
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At reports whether the cell is alive. Out-of-range cells read as dead.
func (g *Grid) At(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)]
}

// Set assigns a cell if it is in bounds and reports whether it was.
func (g *Grid) Set(row, col int, alive bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.data[g.Index(row, col)] = alive
	return true
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	clear(g.data)
}
