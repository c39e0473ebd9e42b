package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	FillRGBA(buf, cells, Alive, color.Black)

	want := []byte{
		0x66, 0x7e, 0xea, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0x66, 0x7e, 0xea, 0xff,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %x, want %x", buf, want)
	}
}

func TestGridLines(t *testing.T) {
	if got, want := GridLines(3, 10), []float32{0, 10, 20, 30}; !slices.Equal(got, want) {
		t.Fatalf("GridLines = %v, want %v", got, want)
	}
	if GridLines(0, 10) != nil || GridLines(4, 0) != nil {
		t.Fatal("degenerate sizes should have no lines")
	}
}
