package mask

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodeSource(t *testing.T) {
	img := solidImage(30, 20, color.RGBA{R: 10, G: 200, B: 30, A: 255})

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, nil); err != nil {
		t.Fatal(err)
	}
	var bm bytes.Buffer
	if err := bmp.Encode(&bm, img); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		data     []byte
		wantMIME string
	}{
		{"png", encodePNG(t, img), "image/png"},
		{"jpeg", jpg.Bytes(), "image/jpeg"},
		{"bmp", bm.Bytes(), "image/bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := DecodeSource(tt.data)
			if err != nil {
				t.Fatalf("DecodeSource() error = %v", err)
			}
			if src.Width() != 30 || src.Height() != 20 {
				t.Errorf("size = %dx%d, want 30x20", src.Width(), src.Height())
			}
			data, mime, err := src.Bytes()
			if err != nil {
				t.Fatalf("Bytes() error = %v", err)
			}
			if mime != tt.wantMIME {
				t.Errorf("MIME = %q, want %q", mime, tt.wantMIME)
			}
			if !bytes.Equal(data, tt.data) {
				t.Error("Bytes() did not return the original encoding")
			}
		})
	}
}

func TestDecodeSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"nil", nil, ErrEmptyData},
		{"empty", []byte{}, ErrEmptyData},
		{"garbage", []byte("definitely not an image"), ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSource(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeSource() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := NewSource(image.NewRGBA(image.Rect(0, 0, 0, 5))); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewSource(empty) error = %v, want ErrInvalidDimensions", err)
	}

	src := solidSource(t, 7, 3, blue)
	data, mime, err := src.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if mime != "image/png" {
		t.Errorf("MIME = %q, want image/png", mime)
	}
	if got := decodePNG(t, data).Bounds().Size(); got != image.Pt(7, 3) {
		t.Errorf("encoded size = %v, want 7x3", got)
	}
}
