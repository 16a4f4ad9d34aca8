// Package photo is the editing session of the qoar photo editor.
//
// # Overview
//
// A [Session] loads an uploaded image into a mask canvas (package mask),
// lets the user paint the region to change, and submits the image, the mask,
// an optional object image and a prompt to an image editor (package edit).
// Each successful edit becomes the new image and is recorded in a linear
// undo/redo history (package history).
//
// # Quick Start
//
//	client, err := edit.NewClient(ctx, edit.WithAPIKey(os.Getenv("QOAR_API_KEY")))
//	if err != nil {
//		return err
//	}
//	s, _ := photo.NewSession(client)
//
//	_ = s.Load(upload, mask.Viewport{Width: 800, Height: 600})
//	s.Canvas().SetBrush(mask.Brush{Size: 30, Enabled: true})
//	// ... route pointer events to s.Canvas().HandlePointer ...
//
//	res, err := s.Submit(ctx, "replace the sky with a sunset", nil)
//
// # Logging
//
// Nothing is logged unless [SetLogger] is called.
package photo
