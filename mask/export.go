package mask

import (
	"bytes"
	"image"
	"image/png"

	"github.com/gogpu/gg"
	"github.com/zaqy-ramadhan/qoar-photo/internal/logging"
)

// Stencil returns the coverage of the buffer as a binary alpha mask: 255
// wherever any paint landed (alpha > 0) and 0 elsewhere. It returns nil for a
// zero-size buffer.
func Stencil(b *Buffer) *gg.Mask {
	pm := b.pixmap()
	if pm == nil {
		return nil
	}

	st := gg.NewMask(pm.Width(), pm.Height())
	dst := st.Data()
	src := pm.Data()
	for i := range dst {
		if src[i*4+3] != 0 {
			dst[i] = 255
		}
	}
	return st
}

// Export renders the buffer as an opaque black and white raster of the same
// size: painted pixels become white, everything else black, regardless of the
// stroke color. The buffer itself is not modified. The second result is
// false when the buffer has no pixels.
func Export(b *Buffer) (*image.RGBA, bool) {
	st := Stencil(b)
	if st == nil {
		return nil, false
	}

	scratch := gg.NewPixmap(st.Width(), st.Height())
	scratch.Clear(gg.Black)

	px := scratch.Data()
	for i, v := range st.Data() {
		if v == 0 {
			continue
		}
		o := i * 4
		px[o+0] = 0xff
		px[o+1] = 0xff
		px[o+2] = 0xff
		px[o+3] = 0xff
	}
	return scratch.ToImage(), true
}

// EncodeMask exports the buffer and encodes it as PNG. The second result is
// false when there is nothing to export or encoding fails.
func EncodeMask(b *Buffer) ([]byte, bool) {
	img, ok := Export(b)
	if !ok {
		logging.Logger().Debug("mask: export skipped, empty buffer")
		return nil, false
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		logging.Logger().Warn("mask: encode PNG failed", "err", err)
		return nil, false
	}
	return buf.Bytes(), true
}
