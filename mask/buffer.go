package mask

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// DefaultStrokeColor is the marker color strokes are painted with. It only
// marks coverage; exported masks are black and white whatever this color is.
var DefaultStrokeColor = gg.Red

// Buffer is the off-screen paint layer at native image resolution.
//
// Strokes are rasterized straight into the layer as they arrive; there is no
// stroke log to replay. A Buffer never changes size: loading a new source
// image replaces it.
type Buffer struct {
	dc     *gg.Context
	width  int
	height int
	color  gg.RGBA

	anchor  gg.Point
	drawing bool

	// layer mirrors the pixmap for compositing; allocated on first use.
	layer *gg.ImageBuf
}

// NewBuffer creates an empty, fully transparent buffer of the given size.
// A non-positive dimension yields a zero-size buffer that ignores strokes.
func NewBuffer(width, height int, color gg.RGBA) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{color: color}
	}
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetColor(color.Color())
	return &Buffer{
		dc:     dc,
		width:  width,
		height: height,
		color:  color,
	}
}

// Width returns the buffer width in native pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in native pixels.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// Drawing reports whether a stroke is in progress.
func (b *Buffer) Drawing() bool { return b.drawing }

// BeginStroke starts a stroke at p without painting anything.
func (b *Buffer) BeginStroke(p gg.Point) {
	b.anchor = p
	b.drawing = true
}

// ContinueStroke paints a round-capped segment from the previous point to p
// and moves the anchor to p, so consecutive calls form one continuous line.
// A segment of zero length paints the cap disc alone.
func (b *Buffer) ContinueStroke(p gg.Point, width float64) error {
	if !b.drawing {
		b.BeginStroke(p)
		return nil
	}
	from := b.anchor
	b.anchor = p

	if b.dc == nil || width <= 0 {
		return nil
	}

	b.dc.SetColor(b.color.Color())
	if math.Hypot(p.X-from.X, p.Y-from.Y) < 1e-9 {
		b.dc.DrawCircle(p.X, p.Y, width/2)
		return b.dc.Fill()
	}

	b.dc.SetLineWidth(width)
	b.dc.MoveTo(from.X, from.Y)
	b.dc.LineTo(p.X, p.Y)
	return b.dc.Stroke()
}

// EndStroke finishes the current stroke; the next BeginStroke will not be
// joined to it.
func (b *Buffer) EndStroke() {
	b.drawing = false
	b.anchor = gg.Point{}
}

// Clear erases the whole buffer to transparent.
func (b *Buffer) Clear() {
	b.EndStroke()
	if b.dc == nil {
		return
	}
	b.dc.ClearPath()
	b.dc.Clear()
}

// pixmap returns the backing pixmap, or nil for a zero-size buffer.
func (b *Buffer) pixmap() *gg.Pixmap {
	if b == nil || b.dc == nil {
		return nil
	}
	_ = b.dc.FlushGPU()
	return b.dc.ResizeTarget()
}

// Image returns a copy of the paint layer, or nil for a zero-size buffer.
func (b *Buffer) Image() *image.RGBA {
	pm := b.pixmap()
	if pm == nil {
		return nil
	}
	return pm.ToImage()
}

// imageBuf returns the paint layer as an image buffer for compositing, or
// nil for a zero-size buffer. The same ImageBuf is refreshed in place on
// every call, so callers must not hold on to it across strokes.
func (b *Buffer) imageBuf() *gg.ImageBuf {
	pm := b.pixmap()
	if pm == nil {
		return nil
	}
	if b.layer == nil {
		layer, err := gg.NewImageBuf(b.width, b.height, gg.FormatRGBA8)
		if err != nil {
			return nil
		}
		b.layer = layer
	}
	copy(b.layer.Data(), pm.Data())
	b.layer.InvalidatePremulCache()
	return b.layer
}
