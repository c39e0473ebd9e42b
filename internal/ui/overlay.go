//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay is the modal rules dialog drawn over the board.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Visible reports whether the dialog is open.
func (o *Overlay) Visible() bool { return o.visible }

// Update toggles the dialog with H and closes it with Escape or a click.
// It reports whether input was consumed.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
		return true
	}
	if !o.visible {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.visible = false
	}
	return true
}

// Draw renders the dialog centred in a w×h area when visible.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	if !o.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 140}, false)

	boxW, boxH := 440, 40+len(RulesText)*18
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), color.RGBA{R: 250, G: 250, B: 252, A: 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}, false)

	face := basicfont.Face7x13
	ty := y + 28
	for i, line := range RulesText {
		col := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		if i == 0 {
			col = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}
		}
		text.Draw(screen, line, face, x+20, ty, col)
		ty += 18
	}
}
