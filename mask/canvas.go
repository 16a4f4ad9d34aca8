package mask

import (
	"context"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/zaqy-ramadhan/qoar-photo/internal/logging"
)

// Handle is what a parent component holds to drive the mask without reaching
// into its drawing state.
type Handle interface {
	// ExportMask returns the current mask as PNG bytes, white where painted
	// and black elsewhere. The second result is false when no mask can be
	// produced; callers treat that as "no mask requested".
	ExportMask(ctx context.Context) ([]byte, bool)

	// Clear erases the mask and redraws the display.
	Clear()
}

// Canvas ties a display Surface, the current Source and its mask Buffer
// together and routes pointer events into strokes.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	surface *Surface
	source  *Source
	buffer  *Buffer
	view    Viewport
	brush   Brush
	engaged bool

	opts          options
	redrawPending bool
}

var _ Handle = (*Canvas)(nil)

// New creates an empty canvas. Load a source before drawing.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		surface: newSurface(o),
		buffer:  NewBuffer(0, 0, o.strokeColor),
		opts:    o,
	}
}

// Load replaces the source image. The display surface is sized to the
// viewport's layout size and the mask buffer is recreated, empty, at the
// image's native size. An in-progress stroke is dropped.
func (c *Canvas) Load(src *Source, view Viewport) error {
	if src == nil {
		return ErrEmptyData
	}
	w, h := view.backingSize()
	if err := c.surface.Configure(w, h); err != nil {
		return fmt.Errorf("mask: load: %w", err)
	}

	c.source = src
	c.view = view
	c.buffer = NewBuffer(src.width, src.height, c.opts.strokeColor)
	c.engaged = c.brush.Enabled

	logging.Logger().Debug("mask: source loaded",
		"width", src.width, "height", src.height,
		"surface_width", w, "surface_height", h)

	c.Render()
	return nil
}

// SetLayout updates the laid-out rectangle of the surface without touching
// its backing store, e.g. after the page scrolled or CSS rescaled it.
func (c *Canvas) SetLayout(view Viewport) {
	c.view = view
}

// Layout returns the laid-out rectangle last passed to Load or SetLayout.
func (c *Canvas) Layout() Viewport { return c.view }

// SetBrush updates the brush. Toggling Enabled redraws so the overlay
// appears or disappears.
func (c *Canvas) SetBrush(b Brush) {
	toggled := b.Enabled != c.brush.Enabled
	c.brush = b
	if b.Enabled {
		c.engaged = true
	}
	if !b.Enabled {
		c.buffer.EndStroke()
	}
	if toggled {
		c.Render()
	}
}

// Brush returns the current brush.
func (c *Canvas) Brush() Brush { return c.brush }

// BrushEngaged reports whether the brush has been enabled since the current
// source was loaded.
func (c *Canvas) BrushEngaged() bool { return c.engaged }

// Source returns the current source image, or nil.
func (c *Canvas) Source() *Source { return c.source }

// Buffer returns the current mask buffer.
func (c *Canvas) Buffer() *Buffer { return c.buffer }

// Surface returns the display surface.
func (c *Canvas) Surface() *Surface { return c.surface }

// MapPointer maps a client position into native image coordinates using the
// canvas's current layout, surface and source.
func (c *Canvas) MapPointer(client gg.Point) (gg.Point, bool) {
	if c.source == nil {
		return gg.Point{}, false
	}
	return MapPointer(client, c.view, c.surface.Size(), c.source.Size())
}

// HandlePointer applies one pointer event. Events are ignored while the brush
// is disabled, with no source loaded, or when they fall outside the image.
func (c *Canvas) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case Release, Cancel:
		c.buffer.EndStroke()
		return
	}

	if !c.brush.Enabled || c.source == nil {
		return
	}

	p, ok := c.MapPointer(ev.Position)
	if !ok {
		logging.Logger().Debug("mask: pointer outside image", "kind", ev.Kind, "x", ev.Position.X, "y", ev.Position.Y)
		return
	}

	switch ev.Kind {
	case Press:
		c.buffer.BeginStroke(p)
	case Drag:
		if !c.buffer.Drawing() {
			return
		}
		width := c.brush.NativeWidth(c.source.width, c.surface.width)
		if err := c.buffer.ContinueStroke(p, width); err != nil {
			logging.Logger().Warn("mask: stroke failed", "err", err)
		}
		c.requestRedraw()
	}
}

// Clear erases the mask and redraws the display at once.
func (c *Canvas) Clear() {
	c.buffer.Clear()
	c.Render()
}

// ExportMask implements Handle.
func (c *Canvas) ExportMask(ctx context.Context) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return EncodeMask(c.buffer)
}

// Render redraws the display surface from the current state.
func (c *Canvas) Render() {
	c.surface.Render(c.source, c.buffer, c.brush.Enabled)
}

// requestRedraw schedules a redraw unless one is already pending. Strokes
// are already in the buffer, so coalescing only skips redundant redraws.
func (c *Canvas) requestRedraw() {
	if c.redrawPending {
		return
	}
	c.redrawPending = true
	c.opts.scheduler.RequestFrame(func() {
		c.redrawPending = false
		c.Render()
	})
}
