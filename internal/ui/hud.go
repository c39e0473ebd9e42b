//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"life-canvas/internal/core"
	"life-canvas/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads and adjusts.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	Stats() session.Stats
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	runColor    = color.RGBA{R: 110, G: 200, B: 120, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleButton  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

var keyHelp = []string{
	"Click   toggle cell",
	"Drag    paint cells",
	"Space   start / stop",
	"N       step",
	"C       clear",
	"R       randomize",
	"1-9     load pattern",
	"[ ]     slower / faster",
	"H       rules",
	"Q       quit",
}

// HUD renders the stats and controls panel to the right of the board.
type HUD struct {
	src      Source
	setters  setters
	width    int
	panel    *ebiten.Image
	controls []controlState

	panelOffsetX int
	controlsTop  int
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{src: src, width: max(width, 0)}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.setters.ints = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		h.setters.floats = setter
	}
	h.controls = newControlStates(src.ParameterControls())
	h.controlsTop = panelPadding + headerBaseline + 5*textLine
	layoutControls(h.controls, h.width, h.controlsTop)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes control values and handles clicks on the +/- buttons.
// It reports whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	refreshControls(h.controls, h.src.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	if idx, dir, ok := hitControl(h.controls, mx-h.panelOffsetX, my); ok {
		h.setters.adjust(&h.controls[idx], dir)
	}
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, titleColor)

	st := h.src.Stats()
	state, stateColor := "Stopped", mutedColor
	if st.Running {
		state, stateColor = "Running", runColor
	}
	pattern := st.Pattern
	if pattern == "" {
		pattern = "-"
	}
	lines := []struct {
		label, value string
		col          color.Color
	}{
		{"Generation", fmt.Sprint(st.Generation), labelColor},
		{"Population", fmt.Sprint(st.Population), labelColor},
		{"State", state, stateColor},
		{"Pattern", pattern, labelColor},
	}
	for _, l := range lines {
		y += textLine
		text.Draw(h.panel, l.label, face, panelPadding, y, mutedColor)
		text.Draw(h.panel, l.value, face, panelPadding+84, y, l.col)
	}

	h.drawControls()

	y = h.controlsTop + len(h.controls)*lineHeight + textLine
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += textLine - 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + lineHeight/2 + 4
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.setters.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.setters.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = idleButton, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
