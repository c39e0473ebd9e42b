package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Offset is a single pattern cell relative to the pattern's origin.
type Offset struct {
	Row int
	Col int
}

// Pattern is a named, fixed shape that can be stamped onto a grid.
type Pattern struct {
	Name        string
	Description string
	Cells       []Offset
}

// Bounds returns the pattern's bounding box as the minimum row and column
// plus its height and width. An empty pattern has a zero bounding box.
func (p Pattern) Bounds() (minRow, minCol, height, width int) {
	return BoundsOf(p.Cells)
}

// BoundsOf computes the bounding box of an arbitrary offset list.
func BoundsOf(cells []Offset) (minRow, minCol, height, width int) {
	if len(cells) == 0 {
		return 0, 0, 0, 0
	}
	minRow, minCol = cells[0].Row, cells[0].Col
	maxRow, maxCol := minRow, minCol
	for _, c := range cells[1:] {
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return minRow, minCol, maxRow - minRow + 1, maxCol - minCol + 1
}

// PatternSource looks up named patterns. Implementations must treat their
// tables as immutable.
type PatternSource interface {
	Pattern(name string) (Pattern, bool)
	Names() []string
}
