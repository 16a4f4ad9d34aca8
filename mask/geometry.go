package mask

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in display-surface pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p gg.Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// snapped rounds the edges of r to whole pixels, so exactly the pixels whose
// centers lie inside r are covered. Edges move by at most half a pixel.
func (r Rect) snapped() Rect {
	x0, y0 := math.Round(r.X), math.Round(r.Y)
	x1, y1 := math.Round(r.X+r.Width), math.Round(r.Y+r.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Letterbox returns the rectangle an image of native size (iw, ih) occupies
// when scaled to fit a container of size (cw, ch) with its aspect ratio kept.
//
// An image relatively wider than the container is fit to the container width
// and centered vertically; otherwise it is fit to the height and centered
// horizontally. Non-positive inputs yield the zero Rect.
//
// Rendering and pointer mapping must both go through this function so the two
// never disagree about where the image is.
func Letterbox(cw, ch, iw, ih float64) Rect {
	if cw <= 0 || ch <= 0 || iw <= 0 || ih <= 0 {
		return Rect{}
	}

	imageAspect := iw / ih
	containerAspect := cw / ch

	if imageAspect > containerAspect {
		h := cw / imageAspect
		return Rect{X: 0, Y: (ch - h) / 2, Width: cw, Height: h}
	}
	w := ch * imageAspect
	return Rect{X: (cw - w) / 2, Y: 0, Width: w, Height: ch}
}

// Viewport is the laid-out rectangle of the display surface in client
// coordinates, as reported by the host (a CSS bounding rect in a browser).
// Its size may differ from the surface's backing-store size.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

// backingSize returns the backing-store size matching the layout size.
func (v Viewport) backingSize() (int, int) {
	return int(v.Width + 0.5), int(v.Height + 0.5)
}
