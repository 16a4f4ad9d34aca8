package mask

import (
	"image"

	"github.com/gogpu/gg"
)

// MapPointer converts a pointer position in client coordinates into native
// image coordinates.
//
// view is the surface's laid-out rectangle, backing its backing-store size and
// native the source image size. The client position is first rescaled into
// backing-store pixels (absorbing any CSS scaling), then located inside the
// letterbox rectangle and rescaled to the image. The second result is false
// when the pointer falls outside the drawn image; callers ignore such points
// rather than clamp them.
func MapPointer(client gg.Point, view Viewport, backing, native image.Point) (gg.Point, bool) {
	if view.Width <= 0 || view.Height <= 0 {
		return gg.Point{}, false
	}
	if backing.X <= 0 || backing.Y <= 0 || native.X <= 0 || native.Y <= 0 {
		return gg.Point{}, false
	}

	canvas := gg.Pt(
		(client.X-view.Left)*float64(backing.X)/view.Width,
		(client.Y-view.Top)*float64(backing.Y)/view.Height,
	)

	r := Letterbox(float64(backing.X), float64(backing.Y), float64(native.X), float64(native.Y))
	if !r.Contains(canvas) {
		return gg.Point{}, false
	}

	return gg.Pt(
		(canvas.X-r.X)/r.Width*float64(native.X),
		(canvas.Y-r.Y)/r.Height*float64(native.Y),
	), true
}
