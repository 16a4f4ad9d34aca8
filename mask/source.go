package mask

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/http"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Source decoding errors.
var (
	// ErrEmptyData is returned when no image bytes were supplied.
	ErrEmptyData = errors.New("mask: empty image data")

	// ErrDecode is returned when the image bytes cannot be decoded.
	ErrDecode = errors.New("mask: decode image")

	// ErrInvalidDimensions is returned for zero or negative sizes.
	ErrInvalidDimensions = errors.New("mask: invalid dimensions")
)

// Source is an immutable decoded source image.
type Source struct {
	img      image.Image
	buf      *gg.ImageBuf
	width    int
	height   int
	data     []byte
	mimeType string
}

// DecodeSource decodes an encoded image (PNG, JPEG, GIF, WebP, BMP or TIFF).
// The encoded bytes are kept so they can be forwarded to an edit request.
func DecodeSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	src, err := newSource(img)
	if err != nil {
		return nil, err
	}
	src.data = append([]byte(nil), data...)
	src.mimeType = mimeForFormat(format, data)
	return src, nil
}

// NewSource wraps an already decoded image. Its encoded form is produced
// lazily as PNG by Bytes.
func NewSource(img image.Image) (*Source, error) {
	if img == nil {
		return nil, ErrEmptyData
	}
	return newSource(img)
}

func newSource(img image.Image) (*Source, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	return &Source{
		img:    img,
		buf:    gg.ImageBufFromImage(img),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// Width returns the native image width.
func (s *Source) Width() int { return s.width }

// Height returns the native image height.
func (s *Source) Height() int { return s.height }

// Size returns the native image size.
func (s *Source) Size() image.Point { return image.Pt(s.width, s.height) }

// Image returns the decoded image.
func (s *Source) Image() image.Image { return s.img }

// Bytes returns the encoded image and its MIME type. Sources built from a
// decoded image are encoded as PNG on first use.
func (s *Source) Bytes() ([]byte, string, error) {
	if s.data == nil {
		var buf bytes.Buffer
		if err := gg.ImageBufFromImage(s.img).EncodePNG(&buf); err != nil {
			return nil, "", err
		}
		s.data = buf.Bytes()
		s.mimeType = "image/png"
	}
	return s.data, s.mimeType, nil
}

func mimeForFormat(format string, data []byte) string {
	switch format {
	case "png", "jpeg", "gif", "webp", "bmp", "tiff":
		return "image/" + format
	}
	return http.DetectContentType(data)
}
