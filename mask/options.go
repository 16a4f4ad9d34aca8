package mask

import "github.com/gogpu/gg"

// Option configures a Canvas or Surface during creation.
//
// Example:
//
//	c := mask.New(
//	    mask.WithScheduler(frames),
//	    mask.WithOverlayOpacity(0.5),
//	)
type Option func(*options)

type options struct {
	scheduler      Scheduler
	overlayOpacity float64
	strokeColor    gg.RGBA
	interpolation  gg.InterpolationMode
}

func defaultOptions() options {
	return options{
		scheduler:      ImmediateScheduler{},
		overlayOpacity: DefaultOverlayOpacity,
		strokeColor:    DefaultStrokeColor,
		interpolation:  gg.InterpBilinear,
	}
}

// WithScheduler sets how redraws after a stroke are scheduled. The default
// redraws immediately. A nil scheduler keeps the default.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithOverlayOpacity sets the opacity of the mask overlay, clamped to [0, 1].
func WithOverlayOpacity(opacity float64) Option {
	return func(o *options) {
		o.overlayOpacity = min(max(opacity, 0), 1)
	}
}

// WithStrokeColor sets the marker color strokes are painted with. Only its
// coverage matters for export; the alpha is forced to opaque.
func WithStrokeColor(c gg.RGBA) Option {
	return func(o *options) {
		c.A = 1
		o.strokeColor = c
	}
}

// WithInterpolation sets the sampling used to scale images onto the surface.
func WithInterpolation(mode gg.InterpolationMode) Option {
	return func(o *options) {
		o.interpolation = mode
	}
}
