// Package escpos builds ESC/POS command buffers for networked thermal
// printers. The encoder is a pure buffer builder: it knows nothing about
// queues, bills or sockets.
package escpos

import (
	"bytes"
	"image"
)

// ESC/POS control bytes.
const (
	esc byte = 0x1B
	gs  byte = 0x1D
	lf  byte = 0x0A
)

// DefaultThreshold is the luminance cutoff used to binarize canvas pixels:
// at or above is white (skip), below is black (print). No dithering.
const DefaultThreshold uint8 = 128

// Encoder accumulates printer commands into a single outbound buffer.
type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Initialize resets the printer state (ESC @).
func (e *Encoder) Initialize() {
	e.buf.Write([]byte{esc, '@'})
}

// Newline feeds one blank line.
func (e *Encoder) Newline() {
	e.buf.WriteByte(lf)
}

// Feed advances the paper n lines (ESC d n).
func (e *Encoder) Feed(n int) {
	e.buf.Write([]byte{esc, 'd', byte(n)})
}

// Cut feeds to the cutter and performs a partial cut (GS V A 0).
func (e *Encoder) Cut() {
	e.buf.Write(CutCommand)
}

// CutCommand is the exact byte sequence Cut appends.
var CutCommand = []byte{gs, 'V', 'A', 0}

// Image appends a raster-image command (GS v 0) for img. The width is
// clamped down to a multiple of 8 so every raster row is whole bytes; the
// renderer already produces 8-aligned canvases so nothing is lost. Pixels
// darker than threshold print black, most significant bit first.
func (e *Encoder) Image(img image.Image, threshold uint8) {
	bounds := img.Bounds()
	width := bounds.Dx()
	width -= width % 8
	height := bounds.Dy()
	rowBytes := width / 8

	raster := make([]byte, rowBytes*height)
	cut := uint32(threshold) << 8
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if (r+g+b)/3 < cut {
				raster[y*rowBytes+x/8] |= 1 << (7 - x%8)
			}
		}
	}

	e.buf.Write([]byte{
		gs, 'v', '0', 0,
		byte(rowBytes), byte(rowBytes >> 8),
		byte(height), byte(height >> 8),
	})
	e.buf.Write(raster)
}

// Encode returns the accumulated command buffer.
func (e *Encoder) Encode() []byte {
	return append([]byte(nil), e.buf.Bytes()...)
}
