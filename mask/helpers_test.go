package mask

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func solidSource(t *testing.T, w, h int, c color.RGBA) *Source {
	t.Helper()
	src, err := NewSource(solidImage(w, h, c))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	return src
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r32, g32, b32, a32 := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8), uint8(a32 >> 8)
}

// isWhite and isBlack check opaque pure white and black pixels.
func isWhite(c color.Color) bool {
	r, g, b, a := rgba8(c)
	return r == 0xff && g == 0xff && b == 0xff && a == 0xff
}

func isBlack(c color.Color) bool {
	r, g, b, a := rgba8(c)
	return r == 0 && g == 0 && b == 0 && a == 0xff
}
