package mask

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name           string
		cw, ch, iw, ih float64
		want           Rect
	}{
		{
			name: "wider image is width fit",
			cw:   800, ch: 600, iw: 1600, ih: 800,
			want: Rect{X: 0, Y: 100, Width: 800, Height: 400},
		},
		{
			name: "taller image is height fit",
			cw:   800, ch: 600, iw: 300, ih: 600,
			want: Rect{X: 250, Y: 0, Width: 300, Height: 600},
		},
		{
			name: "same aspect fills container",
			cw:   400, ch: 300, iw: 800, ih: 600,
			want: Rect{X: 0, Y: 0, Width: 400, Height: 300},
		},
		{
			name: "upscaled small image",
			cw:   200, ch: 200, iw: 10, ih: 5,
			want: Rect{X: 0, Y: 50, Width: 200, Height: 100},
		},
		{name: "zero container", cw: 0, ch: 600, iw: 100, ih: 100},
		{name: "zero image", cw: 800, ch: 600, iw: 100, ih: 0},
		{name: "negative size", cw: -1, ch: 600, iw: 100, ih: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Letterbox(tt.cw, tt.ch, tt.iw, tt.ih)
			if !rectNear(got, tt.want, 1e-9) {
				t.Errorf("Letterbox(%v, %v, %v, %v) = %+v, want %+v", tt.cw, tt.ch, tt.iw, tt.ih, got, tt.want)
			}
		})
	}
}

func TestLetterboxContainedAndAspectPreserved(t *testing.T) {
	sizes := []float64{1, 3, 17, 100, 333, 640, 1080, 4096}
	for _, cw := range sizes {
		for _, ch := range sizes {
			for _, iw := range sizes {
				for _, ih := range sizes {
					r := Letterbox(cw, ch, iw, ih)
					const eps = 1e-9
					if r.X < -eps || r.Y < -eps || r.X+r.Width > cw+eps*cw || r.Y+r.Height > ch+eps*ch {
						t.Fatalf("Letterbox(%v, %v, %v, %v) = %+v escapes container", cw, ch, iw, ih, r)
					}
					if got, want := r.Width/r.Height, iw/ih; math.Abs(got-want) > 1e-9*want {
						t.Fatalf("Letterbox(%v, %v, %v, %v) aspect = %v, want %v", cw, ch, iw, ih, got, want)
					}
					// One axis always touches the container.
					if math.Abs(r.Width-cw) > 1e-9*cw && math.Abs(r.Height-ch) > 1e-9*ch {
						t.Fatalf("Letterbox(%v, %v, %v, %v) = %+v fits neither axis", cw, ch, iw, ih, r)
					}
				}
			}
		}
	}
}

func TestRectSnapped(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"already whole", Rect{X: 0, Y: 100, Width: 800, Height: 400}, Rect{X: 0, Y: 100, Width: 800, Height: 400}},
		{"fractional letterbox", Rect{X: 0, Y: 19.6, Width: 800, Height: 560.8}, Rect{X: 0, Y: 20, Width: 800, Height: 560}},
		{"fractional pillarbox", Rect{X: 133.3, Y: 0, Width: 533.4, Height: 600}, Rect{X: 133, Y: 0, Width: 534, Height: 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.snapped(); got != tt.want {
				t.Errorf("snapped() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		p    gg.Point
		want bool
	}{
		{gg.Pt(10, 20), true},
		{gg.Pt(40, 60), true},
		{gg.Pt(25, 40), true},
		{gg.Pt(9.99, 40), false},
		{gg.Pt(25, 60.01), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if (Rect{}).Contains(gg.Pt(0, 0)) {
		t.Error("empty Rect should contain nothing")
	}
}

func rectNear(a, b Rect, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Width-b.Width) <= eps && math.Abs(a.Height-b.Height) <= eps
}
