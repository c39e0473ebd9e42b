//go:build ebiten

package app

import (
	"life-canvas/internal/core"
	"life-canvas/internal/render"
	"life-canvas/internal/session"
	"life-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the HUD to the right of the board.
const PanelWidth = 220

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	boardW, boardH int

	drawing  bool
	lastRow  int
	lastCol  int
	patterns []string
}

// New constructs a Game for the provided session.
func New(sess *session.Session) *Game {
	e := sess.Engine()
	gp := render.NewGridPainter(e.Rows(), e.Cols(), sess.CellSize())
	w, h := gp.Size()
	return &Game{
		sess:     sess,
		painter:  gp,
		hud:      ui.NewHUD(sess, PanelWidth),
		overlay:  ui.NewOverlay(),
		stepper:  core.NewFixedStep(sess.TPS()),
		boardW:   w,
		boardH:   h,
		patterns: sess.Patterns().Names(),
	}
}

// WindowSize returns the full window size including the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.boardW + g.hud.Width(), g.boardH
}

// Update handles per-frame input and advances the simulation at the
// session's speed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.overlay.Update() {
		g.drawing = false
		return nil
	}
	hudConsumed := g.hud.Update(g.boardW)

	g.handleKeys()
	if !hudConsumed {
		g.handlePointer()
	}

	g.stepper.SetTPS(g.sess.TPS())
	if g.sess.Running() && g.stepper.ShouldStep() {
		g.sess.Step()
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sess.Toggle()
		if g.sess.Running() {
			g.stepper.Restart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if g.sess.Start() {
			g.stepper.Restart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.sess.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sess.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.sess.SetTPS(g.sess.TPS() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.sess.SetTPS(g.sess.TPS() + 1)
	}
	for i, key := range patternKeys {
		if i < len(g.patterns) && inpututil.IsKeyJustPressed(key) {
			g.sess.LoadPattern(g.patterns[i])
		}
	}
}

// handlePointer toggles the cell under a fresh click and paints cells the
// pointer enters while the button stays down.
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		row, col, ok := g.sess.CellAt(x, y)
		if !ok {
			return
		}
		g.sess.ClickAt(x, y)
		g.drawing = true
		g.lastRow, g.lastCol = row, col
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		return
	}
	if !g.drawing {
		return
	}
	row, col, ok := g.sess.CellAt(x, y)
	if !ok || (row == g.lastRow && col == g.lastCol) {
		return
	}
	g.sess.DragAt(x, y)
	g.lastRow, g.lastCol = row, col
}

// Draw renders the board, the HUD and the rules dialog.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Engine().Cells())
	g.hud.Draw(screen, g.boardW, g.boardH)
	g.overlay.Draw(screen, g.boardW, g.boardH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
