// Package session drives a life.Engine on behalf of a front end. It maps
// pointer positions to cells, resolves pattern names, paces stepping and
// notifies an optional observer after every change.
package session

import (
	"context"
	"strconv"

	"life-canvas/internal/core"
	"life-canvas/internal/life"
)

// Speed bounds in generations per second.
const (
	MinTPS     = 1
	MaxTPS     = 60
	DefaultTPS = 10
)

// Parameter keys exposed to HUD controls.
const (
	ParamSpeed   = "speed"
	ParamDensity = "density"
)

// Event names the kind of change an Observer is told about.
type Event int

const (
	EventEdit Event = iota
	EventStep
	EventReset
	EventRunState
)

// Stats is the information a front end shows beside the board.
type Stats struct {
	Generation int
	Population int
	Running    bool
	TPS        int
	Density    float64
	Pattern    string
}

// Observer receives stats after every mutating call.
type Observer interface {
	Observe(ev Event, st Stats)
}

// Session couples an engine with its pattern table, cell size and speed.
type Session struct {
	engine   *life.Engine
	patterns core.PatternSource
	cellSize int
	tps      int
	pattern  string

	loop     *core.Loop
	observer Observer
}

// Option customises a Session.
type Option func(*Session)

// WithTPS sets the initial speed.
func WithTPS(tps int) Option {
	return func(s *Session) { s.SetTPS(tps) }
}

// WithObserver registers an observer for stat updates.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// New wraps engine. cellSize is the width of a cell in pixels and is only
// used to map pointer positions.
func New(engine *life.Engine, patterns core.PatternSource, cellSize int, opts ...Option) *Session {
	s := &Session{
		engine:   engine,
		patterns: patterns,
		cellSize: max(cellSize, 1),
		loop:     core.NewLoop(DefaultTPS),
	}
	s.SetTPS(DefaultTPS)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Patterns returns the pattern table.
func (s *Session) Patterns() core.PatternSource { return s.patterns }

// CellSize returns the pixel size of one cell.
func (s *Session) CellSize() int { return s.cellSize }

// CellAt maps a pixel position to grid coordinates. ok is false when the
// position falls outside the board.
func (s *Session) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/s.cellSize, x/s.cellSize
	if row >= s.engine.Rows() || col >= s.engine.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

// ClickAt toggles the cell under a pointer click.
func (s *Session) ClickAt(x, y int) bool {
	row, col, ok := s.CellAt(x, y)
	if !ok {
		return false
	}
	s.engine.Toggle(row, col)
	s.notify(EventEdit)
	return true
}

// DragAt paints the cell under a dragging pointer.
func (s *Session) DragAt(x, y int) bool {
	row, col, ok := s.CellAt(x, y)
	if !ok {
		return false
	}
	s.engine.Paint(row, col)
	s.notify(EventEdit)
	return true
}

// Start marks the board running. It reports false if it already was.
func (s *Session) Start() bool {
	if s.engine.Running() {
		return false
	}
	s.engine.Start()
	s.notify(EventRunState)
	return true
}

// Stop halts running and ends any active Run at its next tick boundary.
func (s *Session) Stop() {
	s.loop.Stop()
	if !s.engine.Running() {
		return
	}
	s.engine.Stop()
	s.notify(EventRunState)
}

// Toggle flips between running and stopped.
func (s *Session) Toggle() {
	if s.engine.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// Running reports the run state.
func (s *Session) Running() bool { return s.engine.Running() }

// Step advances one generation regardless of run state.
func (s *Session) Step() {
	s.engine.Step()
	s.notify(EventStep)
}

// Clear kills every cell and zeroes the generation.
func (s *Session) Clear() {
	s.engine.Reset()
	s.pattern = ""
	s.notify(EventReset)
}

// Randomize refills the board at the engine's density.
func (s *Session) Randomize() {
	s.engine.Randomize()
	s.pattern = ""
	s.notify(EventReset)
}

// LoadPattern clears the board and places the named pattern at its centre.
// Unknown names leave the board cleared and report false.
func (s *Session) LoadPattern(name string) bool {
	p, ok := s.patterns.Pattern(name)
	if !ok {
		s.Clear()
		return false
	}
	s.engine.LoadPattern(p.Cells)
	s.pattern = p.Name
	s.notify(EventReset)
	return true
}

// Pattern returns the name of the most recently loaded pattern, if the
// board has not been cleared or randomized since.
func (s *Session) Pattern() string { return s.pattern }

// TPS returns the speed in generations per second.
func (s *Session) TPS() int { return s.tps }

// SetTPS changes the speed, clamped to [MinTPS, MaxTPS].
func (s *Session) SetTPS(tps int) {
	s.tps = min(max(tps, MinTPS), MaxTPS)
	s.loop.SetTPS(s.tps)
}

// Stats reports the current counters.
func (s *Session) Stats() Stats {
	return Stats{
		Generation: s.engine.Generation(),
		Population: s.engine.Population(),
		Running:    s.engine.Running(),
		TPS:        s.tps,
		Density:    s.engine.Density(),
		Pattern:    s.pattern,
	}
}

// Run steps the board at the current speed while it is running, calling
// onTick after each generation. It returns when the board is stopped or
// ctx is done. A nil onTick is allowed.
func (s *Session) Run(ctx context.Context, onTick func(Stats)) error {
	return s.loop.Run(ctx, func() bool {
		if !s.engine.Running() {
			return false
		}
		s.Step()
		if onTick != nil {
			onTick(s.Stats())
		}
		return true
	})
}

// RunUnpaced is Run with no delay between generations.
func (s *Session) RunUnpaced(ctx context.Context, onTick func(Stats)) error {
	s.loop.SetTPS(0)
	defer s.loop.SetTPS(s.tps)
	return s.Run(ctx, onTick)
}

func (s *Session) notify(ev Event) {
	if s.observer == nil {
		return
	}
	s.observer.Observe(ev, s.Stats())
}

// Parameters exposes speed and density for HUD display.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			{
				Key:         ParamSpeed,
				Label:       "Speed",
				Type:        core.ParamTypeInt,
				Value:       strconv.Itoa(s.tps),
				Description: "Generations per second while running",
			},
			{
				Key:         ParamDensity,
				Label:       "Density",
				Type:        core.ParamTypeFloat,
				Value:       strconv.FormatFloat(s.engine.Density(), 'f', -1, 64),
				Description: "Chance that Randomize marks a cell alive",
			},
		},
	}}}
}

var controls = []core.ParameterControl{
	{Key: ParamSpeed, Label: "Speed", Type: core.ParamTypeInt, Step: 1, Min: MinTPS, Max: MaxTPS, HasMin: true, HasMax: true},
	{Key: ParamDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetIntParameter updates integer parameters by key.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != ParamSpeed {
		return false
	}
	s.SetTPS(value)
	return true
}

// SetFloatParameter updates floating point parameters by key.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != ParamDensity {
		return false
	}
	s.engine.SetDensity(controls[1].Clamp(value))
	return true
}
