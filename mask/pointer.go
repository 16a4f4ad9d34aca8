package mask

import "github.com/gogpu/gg"

// PointerKind is the type of a pointer event.
type PointerKind uint8

const (
	// Press of a pointer: starts a stroke.
	Press PointerKind = iota
	// Drag of a pressed pointer: extends the stroke.
	Drag
	// Release of a pointer: ends the stroke.
	Release
	// Cancel of a pointer gesture, e.g. the pointer left the window.
	Cancel
)

func (k PointerKind) String() string {
	switch k {
	case Press:
		return "Press"
	case Drag:
		return "Drag"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer event in client coordinates.
type PointerEvent struct {
	Kind     PointerKind
	Position gg.Point
}
