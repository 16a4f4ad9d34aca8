// Package mask implements the mask-authoring canvas of the photo editor.
//
// # Overview
//
// Two surfaces cooperate. The display [Surface] is sized to the on-screen
// container and shows the source image letterboxed inside it. The mask
// [Buffer] is sized to the source image's native resolution and accumulates
// brush strokes as one persistent paint layer. Pointer positions are mapped
// from the display into the buffer with [MapPointer]; both sides compute the
// letterbox rectangle with the same function, [Letterbox].
//
// # Usage
//
//	src, err := mask.DecodeSource(data)
//	if err != nil {
//	    return err
//	}
//
//	c := mask.New()
//	_ = c.Load(src, mask.Viewport{Width: 800, Height: 600})
//	c.SetBrush(mask.Brush{Size: 30, Enabled: true})
//
//	c.HandlePointer(mask.PointerEvent{Kind: mask.Press, Position: gg.Pt(400, 300)})
//	c.HandlePointer(mask.PointerEvent{Kind: mask.Drag, Position: gg.Pt(420, 310)})
//	c.HandlePointer(mask.PointerEvent{Kind: mask.Release})
//
//	png, ok := c.ExportMask(ctx) // white = edit, black = keep
//
// # Failure Model
//
// Nothing in this package aborts the host. Pointers outside the image, strokes
// without a source and exports without a buffer are silent no-ops; raster
// failures are logged and the operation produces nothing.
//
// # Thread Safety
//
// Canvas, Surface and Buffer are NOT safe for concurrent use. They are driven
// from the host's UI thread, one pointer event at a time.
package mask
