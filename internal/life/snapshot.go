package life

import (
	"slices"
	"strings"
)

// Snapshot is an immutable copy of the board taken at one generation.
type Snapshot struct {
	Rows       int
	Cols       int
	Generation int
	Population int
	cells      []bool
}

// Snapshot copies the current board.
func (e *Engine) Snapshot() Snapshot {
	cells := append([]bool(nil), e.cur.Cells()...)
	return Snapshot{
		Rows:       e.cur.Rows,
		Cols:       e.cur.Cols,
		Generation: e.generation,
		Population: e.cur.Count(),
		cells:      cells,
	}
}

// Alive reports whether a cell was alive when the snapshot was taken.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return false
	}
	return s.cells[row*s.Cols+col]
}

// Equal reports whether two snapshots hold the same cells.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Rows == o.Rows && s.Cols == o.Cols && slices.Equal(s.cells, o.cells)
}

// String renders the board with '#' for live cells and '.' for dead ones.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.Cols + 1) * s.Rows)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			if s.cells[row*s.Cols+col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
