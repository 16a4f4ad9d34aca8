// Package history keeps the linear undo/redo list of image edits.
//
// The list always has a current entry once reset. Pushing after an undo
// discards the redo tail, like a text editor.
package history

import (
	"image"
	"time"

	xdraw "golang.org/x/image/draw"
)

// DefaultLimit is the number of entries kept when New is given no limit.
const DefaultLimit = 20

// Entry is one state of the edited image.
type Entry struct {
	Image     []byte
	MIMEType  string
	Prompt    string // empty for the original upload
	Text      string // model commentary, if any
	Thumbnail image.Image
	Created   time.Time
}

// History is a bounded linear undo/redo list.
//
// History is NOT safe for concurrent use.
type History struct {
	entries []Entry
	cursor  int
	limit   int
}

// New creates an empty history that keeps at most limit entries. A limit
// below 1 selects DefaultLimit.
func New(limit int) *History {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &History{cursor: -1, limit: limit}
}

// Reset drops every entry and makes e the only one.
func (h *History) Reset(e Entry) {
	h.entries = append(h.entries[:0], stamp(e))
	h.cursor = 0
}

// Push appends e after the current entry, discarding any redo tail, and
// makes it current. The oldest entries are evicted past the limit.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.cursor+1], stamp(e))
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

// Current returns the current entry.
func (h *History) Current() (Entry, bool) {
	if h.cursor < 0 {
		return Entry{}, false
	}
	return h.entries[h.cursor], true
}

// Undo steps back one entry and returns it.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps forward one entry and returns it.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// At returns entry i without moving the cursor.
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	return h.entries[i], true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Index returns the position of the current entry, -1 when empty.
func (h *History) Index() int { return h.cursor }

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

func stamp(e Entry) Entry {
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	return e
}

// Thumbnail scales img so its longer side is at most maxSide pixels,
// keeping the aspect ratio. Images already small enough are returned as is.
func Thumbnail(img image.Image, maxSide int) image.Image {
	if img == nil || maxSide <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
