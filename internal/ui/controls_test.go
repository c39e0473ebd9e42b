package ui

import (
	"math"
	"testing"

	"life-canvas/internal/life"
	"life-canvas/internal/patterns"
	"life-canvas/internal/session"
)

func newControls(t *testing.T) (*session.Session, []controlState, setters) {
	t.Helper()
	s := session.New(life.New(10, 10), patterns.Default(), 10, session.WithTPS(59))
	states := newControlStates(s.ParameterControls())
	refreshControls(states, s.Parameters())
	return s, states, setters{ints: s, floats: s}
}

func TestRefreshControls(t *testing.T) {
	_, states, _ := newControls(t)
	if len(states) != 2 {
		t.Fatalf("got %d controls, want 2", len(states))
	}
	if !states[0].hasValue || states[0].value != "59" {
		t.Fatalf("speed control = %+v", states[0])
	}
	if !states[1].hasValue || states[1].value != "0.30" {
		t.Fatalf("density control value = %q", states[1].value)
	}
}

func TestAdjustRespectsBounds(t *testing.T) {
	s, states, set := newControls(t)
	speed := &states[0]
	if !set.adjust(speed, 1) || s.TPS() != 60 {
		t.Fatalf("speed up failed: tps %d", s.TPS())
	}
	if set.canAdjust(speed, 1) || set.adjust(speed, 1) {
		t.Fatal("speed went past the maximum")
	}
	if !set.canAdjust(speed, -1) {
		t.Fatal("speed down should be allowed")
	}

	density := &states[1]
	if !set.adjust(density, -1) {
		t.Fatal("density down failed")
	}
	if math.Abs(s.Engine().Density()-0.25) > 1e-9 {
		t.Fatalf("density = %v, want 0.25", s.Engine().Density())
	}
	if density.value != "0.25" {
		t.Fatalf("density label = %q", density.value)
	}
}

func TestAdjustWithoutSetter(t *testing.T) {
	_, states, _ := newControls(t)
	var none setters
	if none.canAdjust(&states[0], 1) || none.adjust(&states[1], 1) {
		t.Fatal("adjust without setters should be refused")
	}
}

func TestLayoutAndHit(t *testing.T) {
	_, states, _ := newControls(t)
	layoutControls(states, 220, 100)
	minus, plus := states[1].minusRect, states[1].plusRect
	if plus.Max.X != 220-panelPadding {
		t.Fatalf("plus button right edge = %d", plus.Max.X)
	}
	if minus.Max.X != plus.Min.X-buttonGap {
		t.Fatal("buttons overlap")
	}
	idx, dir, ok := hitControl(states, plus.Min.X+1, plus.Min.Y+1)
	if !ok || idx != 1 || dir != 1 {
		t.Fatalf("hit = %d, %d, %v", idx, dir, ok)
	}
	idx, dir, ok = hitControl(states, minus.Min.X, minus.Min.Y)
	if !ok || idx != 1 || dir != -1 {
		t.Fatalf("hit = %d, %d, %v", idx, dir, ok)
	}
	if _, _, ok := hitControl(states, 0, 0); ok {
		t.Fatal("hit outside buttons")
	}
}
