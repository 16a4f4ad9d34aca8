package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/zaqy-ramadhan/qoar-photo/edit"
	"github.com/zaqy-ramadhan/qoar-photo/history"
	"github.com/zaqy-ramadhan/qoar-photo/internal/logging"
	"github.com/zaqy-ramadhan/qoar-photo/mask"
)

// DefaultThumbnailSize is the longer side of history thumbnails.
const DefaultThumbnailSize = 128

// Session errors.
var (
	// ErrNoImage is returned when an edit is submitted before an image is loaded.
	ErrNoImage = errors.New("photo: no image loaded")

	// ErrNilEditor is returned by NewSession for a nil editor.
	ErrNilEditor = errors.New("photo: nil editor")
)

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	historyLimit  int
	thumbnailSize int
	canvasOpts    []mask.Option
}

// WithHistoryLimit sets how many edits are kept for undo.
func WithHistoryLimit(n int) SessionOption {
	return func(o *sessionOptions) { o.historyLimit = n }
}

// WithThumbnailSize sets the longer side of history thumbnails in pixels.
func WithThumbnailSize(n int) SessionOption {
	return func(o *sessionOptions) { o.thumbnailSize = n }
}

// WithCanvasOptions passes options through to the mask canvas.
func WithCanvasOptions(opts ...mask.Option) SessionOption {
	return func(o *sessionOptions) { o.canvasOpts = append(o.canvasOpts, opts...) }
}

// Session is one editing session: the mask canvas showing the current image,
// the editor that performs edits, and the undo/redo history of results.
//
// Session is NOT safe for concurrent use; drive it from the UI thread and
// await Submit before handling further input.
type Session struct {
	canvas  *mask.Canvas
	editor  edit.Editor
	history *history.History
	thumb   int
}

// NewSession creates a session that sends edits to editor.
func NewSession(editor edit.Editor, opts ...SessionOption) (*Session, error) {
	if editor == nil {
		return nil, ErrNilEditor
	}
	o := sessionOptions{historyLimit: history.DefaultLimit, thumbnailSize: DefaultThumbnailSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		canvas:  mask.New(o.canvasOpts...),
		editor:  editor,
		history: history.New(o.historyLimit),
		thumb:   o.thumbnailSize,
	}, nil
}

// Canvas returns the mask canvas. Hosts route pointer events and brush
// changes to it directly.
func (s *Session) Canvas() *mask.Canvas { return s.canvas }

// Mask returns the handle used to export or clear the mask.
func (s *Session) Mask() mask.Handle { return s.canvas }

// History returns the edit history.
func (s *Session) History() *history.History { return s.history }

// Load starts over with a freshly uploaded image displayed in view.
func (s *Session) Load(data []byte, view mask.Viewport) error {
	src, err := mask.DecodeSource(data)
	if err != nil {
		return err
	}
	if err := s.canvas.Load(src, view); err != nil {
		return err
	}

	raw, mime, _ := src.Bytes()
	s.history.Reset(history.Entry{
		Image:     raw,
		MIMEType:  mime,
		Thumbnail: history.Thumbnail(src.Image(), s.thumb),
	})
	return nil
}

// Submit sends the current image, the mask (only if the brush was used on
// it) and the optional object image to the editor. On success the result
// becomes the current image, the mask is reset and the result is pushed onto
// the history. On failure nothing changes.
func (s *Session) Submit(ctx context.Context, prompt string, object []byte) (*edit.Result, error) {
	src := s.canvas.Source()
	if src == nil {
		return nil, ErrNoImage
	}
	raw, mime, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("photo: encode source: %w", err)
	}

	req := edit.Request{
		Image:  edit.Blob{Data: raw, MIMEType: mime},
		Object: edit.Blob{Data: object},
		Prompt: prompt,
	}
	if s.canvas.BrushEngaged() {
		if m, ok := s.canvas.ExportMask(ctx); ok {
			req.Mask = edit.Blob{Data: m, MIMEType: "image/png"}
		}
	}

	res, err := s.editor.Edit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("photo: edit: %w", err)
	}

	next, err := mask.DecodeSource(res.Image.Data)
	if err != nil {
		return nil, fmt.Errorf("photo: edited image: %w", err)
	}
	if err := s.canvas.Load(next, s.canvas.Layout()); err != nil {
		return nil, err
	}

	_, nextMIME, _ := next.Bytes()
	s.history.Push(history.Entry{
		Image:     res.Image.Data,
		MIMEType:  nextMIME,
		Prompt:    edit.NormalizePrompt(prompt),
		Text:      res.Text,
		Thumbnail: history.Thumbnail(next.Image(), s.thumb),
	})
	logging.Logger().Info("photo: edit applied",
		"width", next.Width(), "height", next.Height(), "masked", !req.Mask.Empty(), "history", s.history.Len())
	return res, nil
}

// Undo shows the previous history entry. It reports false when there is
// nothing to undo. When the entry cannot be shown the history stays where it
// was.
func (s *Session) Undo() (bool, error) {
	if !s.history.CanUndo() {
		return false, nil
	}
	if err := s.show(s.history.Index() - 1); err != nil {
		return true, err
	}
	s.history.Undo()
	return true, nil
}

// Redo shows the next history entry. It reports false when there is
// nothing to redo. When the entry cannot be shown the history stays where it
// was.
func (s *Session) Redo() (bool, error) {
	if !s.history.CanRedo() {
		return false, nil
	}
	if err := s.show(s.history.Index() + 1); err != nil {
		return true, err
	}
	s.history.Redo()
	return true, nil
}

// show loads history entry i into the canvas at the current layout.
func (s *Session) show(i int) error {
	e, ok := s.history.At(i)
	if !ok {
		return fmt.Errorf("photo: no history entry %d", i)
	}
	src, err := mask.DecodeSource(e.Image)
	if err != nil {
		return fmt.Errorf("photo: history entry %d: %w", i, err)
	}
	return s.canvas.Load(src, s.canvas.Layout())
}

// Preview returns the current image, or nil when none is loaded.
func (s *Session) Preview() image.Image {
	if src := s.canvas.Source(); src != nil {
		return src.Image()
	}
	return nil
}

// EncodeDisplay writes the display surface as PNG.
func (s *Session) EncodeDisplay() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.canvas.Surface().EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
