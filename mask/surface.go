package mask

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// DefaultOverlayOpacity is the opacity the mask is composited at while the
// brush is active.
const DefaultOverlayOpacity = 0.4

// ErrNotConfigured is returned when a surface is used before Configure.
var ErrNotConfigured = errors.New("mask: surface not configured")

// Surface is the display-resolution drawing surface. It shows the source
// image letterboxed and, while the brush is active, the mask buffer on top
// of it at reduced opacity.
type Surface struct {
	dc      *gg.Context
	width   int
	height  int
	opacity float64
	interp  gg.InterpolationMode
	dirty   bool
}

// NewSurface creates an unconfigured surface. Call Configure before Render.
func NewSurface(opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSurface(o)
}

func newSurface(o options) *Surface {
	return &Surface{opacity: o.overlayOpacity, interp: o.interpolation}
}

// Configure sets the backing-store size. The previous contents are dropped.
func (s *Surface) Configure(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if s.dc == nil {
		s.dc = gg.NewContext(width, height)
	} else if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("mask: surface resize: %w", err)
	}
	s.width = width
	s.height = height
	s.dc.Clear()
	s.dirty = true
	return nil
}

// Width returns the backing-store width, 0 before Configure.
func (s *Surface) Width() int { return s.width }

// Height returns the backing-store height, 0 before Configure.
func (s *Surface) Height() int { return s.height }

// Size returns the backing-store size.
func (s *Surface) Size() image.Point { return image.Pt(s.width, s.height) }

// Geometry returns the letterbox rectangle of src on this surface.
func (s *Surface) Geometry(src *Source) Rect {
	if src == nil {
		return Rect{}
	}
	return Letterbox(float64(s.width), float64(s.height), float64(src.width), float64(src.height))
}

// Render redraws the surface from scratch. With no source, or before
// Configure, nothing is drawn.
func (s *Surface) Render(src *Source, buf *Buffer, brushEnabled bool) {
	if s.dc == nil {
		return
	}
	s.dc.Clear()
	s.dirty = true
	if src == nil {
		return
	}

	// Whole-pixel edges keep every drawn row and column fully covered.
	r := s.Geometry(src).snapped()
	if r.Empty() {
		return
	}
	s.dc.DrawImageEx(src.buf, gg.DrawImageOptions{
		X:             r.X,
		Y:             r.Y,
		DstWidth:      r.Width,
		DstHeight:     r.Height,
		Interpolation: s.interp,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})

	if !brushEnabled || s.opacity <= 0 {
		return
	}
	layer := buf.imageBuf()
	if layer == nil {
		return
	}
	s.dc.DrawImageEx(layer, gg.DrawImageOptions{
		X:             r.X,
		Y:             r.Y,
		DstWidth:      r.Width,
		DstHeight:     r.Height,
		Interpolation: s.interp,
		Opacity:       s.opacity,
		BlendMode:     gg.BlendNormal,
	})
}

// Image returns a copy of the surface pixels, or nil before Configure.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return ErrNotConfigured
	}
	return s.dc.EncodePNG(w)
}

// IsDirty reports whether the surface changed since the last Present.
func (s *Surface) IsDirty() bool { return s.dirty }

// Present uploads the surface pixels to a GPU texture when they changed
// since the last upload.
func (s *Surface) Present(dst gpucontext.TextureUpdater) error {
	if s.dc == nil {
		return ErrNotConfigured
	}
	if !s.dirty {
		return nil
	}
	// A failed GPU flush leaves the CPU-rendered pixels in place.
	_ = s.dc.FlushGPU()
	if err := dst.UpdateData(s.dc.ResizeTarget().Data()); err != nil {
		return fmt.Errorf("mask: texture update failed: %w", err)
	}
	s.dirty = false
	return nil
}
