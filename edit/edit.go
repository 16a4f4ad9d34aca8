// Package edit sends image-edit requests to a generative image API.
//
// The mask canvas produces the mask, the host supplies the source image,
// an optional object image and the prompt; an [Editor] turns them into an
// edited image plus optional commentary from the model.
package edit

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Request errors.
var (
	// ErrEmptyPrompt is returned when the prompt is blank.
	ErrEmptyPrompt = errors.New("edit: empty prompt")

	// ErrNoSource is returned when the request carries no source image.
	ErrNoSource = errors.New("edit: no source image")

	// ErrNoImage is returned when the response holds no image.
	ErrNoImage = errors.New("edit: response contains no image")
)

// Blob is an encoded image.
type Blob struct {
	Data     []byte
	MIMEType string
}

// Empty reports whether the blob carries no data.
func (b Blob) Empty() bool { return len(b.Data) == 0 }

// mime returns the blob's MIME type, sniffing it from the data when unset.
func (b Blob) mime() string {
	if b.MIMEType != "" {
		return b.MIMEType
	}
	return http.DetectContentType(b.Data)
}

// Request is one edit: the source image, an optional mask (white = region to
// change), an optional object image to place, and the instruction.
type Request struct {
	Image  Blob
	Mask   Blob
	Object Blob
	Prompt string
}

// Result is the edited image and any text the model returned with it.
type Result struct {
	Image Blob
	Text  string
}

// Editor performs image edits.
type Editor interface {
	Edit(ctx context.Context, req Request) (*Result, error)
}

// EditorFunc adapts a function to the Editor interface.
type EditorFunc func(ctx context.Context, req Request) (*Result, error)

// Edit calls f(ctx, req).
func (f EditorFunc) Edit(ctx context.Context, req Request) (*Result, error) { return f(ctx, req) }

// NormalizePrompt trims the prompt and puts it in Unicode NFC form so that
// visually identical prompts are sent byte-identical.
func NormalizePrompt(prompt string) string {
	return norm.NFC.String(strings.TrimSpace(prompt))
}

// Validate checks the request and normalizes its prompt in place.
func (r *Request) Validate() error {
	r.Prompt = NormalizePrompt(r.Prompt)
	if r.Prompt == "" {
		return ErrEmptyPrompt
	}
	if r.Image.Empty() {
		return ErrNoSource
	}
	return nil
}
