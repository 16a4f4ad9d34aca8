package mask

import (
	"testing"

	"github.com/gogpu/gg"
)

func alphaAt(b *Buffer, x, y int) uint8 {
	img := b.Image()
	return img.RGBAAt(x, y).A
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(64, 32, DefaultStrokeColor)
	if b.Width() != 64 || b.Height() != 32 {
		t.Fatalf("size = %dx%d, want 64x32", b.Width(), b.Height())
	}
	img := b.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatal("new buffer is not fully transparent")
		}
	}
	if b.Drawing() {
		t.Error("Drawing() = true on a new buffer")
	}
}

func TestBufferZeroSize(t *testing.T) {
	b := NewBuffer(0, 10, DefaultStrokeColor)
	b.BeginStroke(gg.Pt(1, 1))
	if err := b.ContinueStroke(gg.Pt(5, 5), 4); err != nil {
		t.Fatalf("ContinueStroke() error = %v", err)
	}
	b.Clear()
	if b.Image() != nil {
		t.Error("Image() on a zero-size buffer should be nil")
	}
}

func TestBufferStroke(t *testing.T) {
	b := NewBuffer(100, 100, DefaultStrokeColor)
	b.BeginStroke(gg.Pt(20, 50))
	if alphaAt(b, 20, 50) != 0 {
		t.Fatal("BeginStroke painted a pixel")
	}
	if err := b.ContinueStroke(gg.Pt(80, 50), 10); err != nil {
		t.Fatalf("ContinueStroke() error = %v", err)
	}

	for _, x := range []int{20, 35, 50, 65, 79} {
		if a := alphaAt(b, x, 50); a == 0 {
			t.Errorf("pixel (%d, 50) not painted", x)
		}
	}
	// Round cap extends past the end points.
	if a := alphaAt(b, 17, 50); a == 0 {
		t.Error("round cap missing before start point")
	}
	if a := alphaAt(b, 50, 30); a != 0 {
		t.Errorf("pixel (50, 30) alpha = %d, want 0", a)
	}
	if !b.Drawing() {
		t.Error("Drawing() = false during a stroke")
	}
}

func TestBufferSegmentsAreStitched(t *testing.T) {
	b := NewBuffer(100, 100, DefaultStrokeColor)
	b.BeginStroke(gg.Pt(10, 10))
	for _, p := range []gg.Point{gg.Pt(50, 10), gg.Pt(50, 50), gg.Pt(90, 50)} {
		if err := b.ContinueStroke(p, 6); err != nil {
			t.Fatalf("ContinueStroke(%v) error = %v", p, err)
		}
	}
	// Midpoints of every segment are covered, so the line is continuous.
	for _, p := range [][2]int{{30, 10}, {50, 30}, {70, 50}} {
		if alphaAt(b, p[0], p[1]) == 0 {
			t.Errorf("pixel %v not painted", p)
		}
	}
}

func TestBufferEndStrokeDisconnects(t *testing.T) {
	b := NewBuffer(100, 100, DefaultStrokeColor)
	b.BeginStroke(gg.Pt(10, 10))
	_ = b.ContinueStroke(gg.Pt(20, 10), 4)
	b.EndStroke()

	b.BeginStroke(gg.Pt(80, 90))
	_ = b.ContinueStroke(gg.Pt(90, 90), 4)

	// A connecting segment would have crossed the middle of the buffer.
	if a := alphaAt(b, 50, 50); a != 0 {
		t.Errorf("pixel (50, 50) alpha = %d, want 0", a)
	}
}

func TestBufferContinueWithoutBegin(t *testing.T) {
	b := NewBuffer(50, 50, DefaultStrokeColor)
	if err := b.ContinueStroke(gg.Pt(25, 25), 10); err != nil {
		t.Fatalf("ContinueStroke() error = %v", err)
	}
	if alphaAt(b, 25, 25) != 0 {
		t.Error("ContinueStroke without BeginStroke painted")
	}
	if !b.Drawing() {
		t.Error("ContinueStroke without BeginStroke should start a stroke")
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(40, 40, DefaultStrokeColor)
	b.BeginStroke(gg.Pt(20, 20))
	_ = b.ContinueStroke(gg.Pt(20, 20), 20)
	if alphaAt(b, 20, 20) == 0 {
		t.Fatal("dot not painted")
	}

	b.Clear()
	if alphaAt(b, 20, 20) != 0 {
		t.Error("Clear() left paint behind")
	}
	if b.Drawing() {
		t.Error("Clear() should end the stroke")
	}
}

func TestBufferImageBufReused(t *testing.T) {
	b := NewBuffer(100, 100, DefaultStrokeColor)
	first := b.imageBuf()
	if first == nil {
		t.Fatal("imageBuf() = nil")
	}
	if _, _, _, a := first.GetRGBA(50, 50); a != 0 {
		t.Fatalf("empty layer alpha = %d, want 0", a)
	}

	b.BeginStroke(gg.Pt(50, 50))
	_ = b.ContinueStroke(gg.Pt(50, 50), 20)

	second := b.imageBuf()
	if second != first {
		t.Error("imageBuf() allocated a new buffer for the same layer")
	}
	if _, _, _, a := second.GetRGBA(50, 50); a == 0 {
		t.Error("imageBuf() does not show the new stroke")
	}

	if NewBuffer(0, 0, DefaultStrokeColor).imageBuf() != nil {
		t.Error("imageBuf() on a zero-size buffer should be nil")
	}
}
