//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a boolean board as scaled cells with outlines.
type GridPainter struct {
	rows, cols int
	cellSize   int
	img        *ebiten.Image
	buf        []byte

	xs, ys []float32

	On      color.Color
	Off     color.Color
	Outline color.Color
}

// NewGridPainter allocates a painter for a rows×cols board drawn with
// cellSize pixels per cell.
func NewGridPainter(rows, cols, cellSize int) *GridPainter {
	gp := &GridPainter{
		rows:     rows,
		cols:     cols,
		cellSize: max(cellSize, 1),
		buf:      make([]byte, 4*rows*cols),
		On:       Alive,
		Off:      Background,
		Outline:  Outline,
	}
	if rows > 0 && cols > 0 {
		gp.img = ebiten.NewImage(cols, rows)
	}
	gp.xs = GridLines(cols, gp.cellSize)
	gp.ys = GridLines(rows, gp.cellSize)
	return gp
}

// Blit uploads cells into the painter image, draws it scaled onto dst and
// outlines every cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool) {
	dst.Fill(gp.Off)
	if gp.img == nil || len(cells) != gp.rows*gp.cols {
		return
	}
	FillRGBA(gp.buf, cells, gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cellSize), float64(gp.cellSize))
	dst.DrawImage(gp.img, op)

	width, height := gp.xs[len(gp.xs)-1], gp.ys[len(gp.ys)-1]
	for _, x := range gp.xs {
		vector.StrokeLine(dst, x, 0, x, height, 1, gp.Outline, false)
	}
	for _, y := range gp.ys {
		vector.StrokeLine(dst, 0, y, width, y, 1, gp.Outline, false)
	}
}

// Size returns the drawn board size in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.cols * gp.cellSize, gp.rows * gp.cellSize }
