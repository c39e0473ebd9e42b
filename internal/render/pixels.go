package render

import "image/color"

// Palette matching the canvas colours of the browser version.
var (
	Background = color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
	Alive      = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	Outline    = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// FillRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell. buf must hold at least 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// GridLines returns the pixel offsets of the cell boundaries along one axis
// for n cells of size px, including both outer edges.
func GridLines(n, px int) []float32 {
	if n <= 0 || px <= 0 {
		return nil
	}
	lines := make([]float32, n+1)
	for i := range lines {
		lines[i] = float32(i * px)
	}
	return lines
}
