package escpos

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// testImage returns a white w x h canvas with the given pixels set black.
func testImage(w, h int, black ...image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, p := range black {
		img.Set(p.X, p.Y, color.Black)
	}
	return img
}

func TestInitialize(t *testing.T) {
	enc := NewEncoder()
	enc.Initialize()
	if got := enc.Encode(); !bytes.Equal(got, []byte{0x1B, '@'}) {
		t.Errorf("Initialize = % X", got)
	}
}

func TestCut(t *testing.T) {
	enc := NewEncoder()
	enc.Cut()
	if got := enc.Encode(); !bytes.Equal(got, []byte{0x1D, 'V', 'A', 0}) {
		t.Errorf("Cut = % X", got)
	}
}

func TestFeedAndNewline(t *testing.T) {
	enc := NewEncoder()
	enc.Newline()
	enc.Feed(3)
	if got := enc.Encode(); !bytes.Equal(got, []byte{0x0A, 0x1B, 'd', 3}) {
		t.Errorf("buffer = % X", got)
	}
}

func TestImageRasterHeader(t *testing.T) {
	enc := NewEncoder()
	enc.Image(testImage(16, 24), DefaultThreshold)

	got := enc.Encode()
	wantHeader := []byte{0x1D, 'v', '0', 0, 2, 0, 24, 0}
	if !bytes.Equal(got[:8], wantHeader) {
		t.Errorf("raster header = % X, want % X", got[:8], wantHeader)
	}
	if len(got) != 8+2*24 {
		t.Errorf("buffer length = %d, want %d", len(got), 8+2*24)
	}
}

func TestImageBinarization(t *testing.T) {
	enc := NewEncoder()
	enc.Image(testImage(8, 2, image.Pt(0, 0), image.Pt(7, 1)), DefaultThreshold)

	got := enc.Encode()
	raster := got[8:]
	if raster[0] != 0x80 {
		t.Errorf("row 0 = %08b, want pixel 0 set", raster[0])
	}
	if raster[1] != 0x01 {
		t.Errorf("row 1 = %08b, want pixel 7 set", raster[1])
	}
}

func TestImageThresholdBoundary(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		img.Set(x, 0, color.Gray{Y: 128}) // exactly at the threshold: white
	}
	img.Set(0, 0, color.Gray{Y: 127}) // just below: black

	enc := NewEncoder()
	enc.Image(img, DefaultThreshold)
	raster := enc.Encode()[8:]
	if raster[0] != 0x80 {
		t.Errorf("raster = %08b, want only the sub-threshold pixel set", raster[0])
	}
}

func TestImageWidthClampedToBytes(t *testing.T) {
	enc := NewEncoder()
	enc.Image(testImage(13, 1), DefaultThreshold)

	got := enc.Encode()
	if got[4] != 1 || got[5] != 0 {
		t.Errorf("row bytes = %d, want 1 (13px clamped to 8)", int(got[4])|int(got[5])<<8)
	}
}

func TestEncodeReturnsCopy(t *testing.T) {
	enc := NewEncoder()
	enc.Initialize()
	first := enc.Encode()
	enc.Cut()
	if len(first) != 2 {
		t.Errorf("earlier Encode result changed: % X", first)
	}
}
