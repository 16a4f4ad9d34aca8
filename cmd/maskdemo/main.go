// Command maskdemo paints a mask over an image the way the browser front end
// does and writes the display preview and the exported mask as PNG files.
// With -prompt it also submits the edit and writes the edited image.
//
// Strokes are given in display coordinates, strokes separated by ';' and
// points by spaces:
//
//	maskdemo -input photo.jpg -strokes "300,200 360,220 420,260;100,90 120,95"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
	photo "github.com/zaqy-ramadhan/qoar-photo"
	"github.com/zaqy-ramadhan/qoar-photo/edit"
	"github.com/zaqy-ramadhan/qoar-photo/mask"
)

func main() {
	var (
		input    = flag.String("input", "", "source image (png, jpeg, gif, webp, bmp, tiff)")
		width    = flag.Int("width", 800, "display width")
		height   = flag.Int("height", 600, "display height")
		brush    = flag.Float64("brush", 30, "brush size in display pixels")
		strokes  = flag.String("strokes", "", "strokes in display coordinates")
		maskOut  = flag.String("mask", "mask.png", "mask output file")
		preview  = flag.String("preview", "preview.png", "display preview output file")
		prompt   = flag.String("prompt", "", "edit instruction; submits the edit when set")
		object   = flag.String("object", "", "optional object image to place")
		output   = flag.String("output", "edited.png", "edited image output file")
		endpoint = flag.String("endpoint", edit.DefaultEndpoint, "image API base URL")
		model    = flag.String("model", edit.DefaultModel, "image model")
		apiKey   = flag.String("api-key", os.Getenv("QOAR_API_KEY"), "image API key")
		timeout  = flag.Duration("timeout", 2*time.Minute, "edit request timeout")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("-input is required")
	}
	if *verbose {
		photo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	paths, err := parseStrokes(*strokes)
	if err != nil {
		log.Fatalf("Invalid -strokes: %v", err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var editor edit.Editor = edit.EditorFunc(func(context.Context, edit.Request) (*edit.Result, error) {
		return nil, errors.New("no -prompt given")
	})
	if *prompt != "" {
		client, err := edit.NewClient(context.Background(),
			edit.WithEndpoint(*endpoint),
			edit.WithModel(*model),
			edit.WithAPIKey(*apiKey),
		)
		if err != nil {
			log.Fatalf("Failed to create edit client: %v", err)
		}
		editor = client
	}
	s, err := photo.NewSession(editor)
	if err != nil {
		log.Fatal(err)
	}
	view := mask.Viewport{Width: float64(*width), Height: float64(*height)}
	if err := s.Load(data, view); err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	c := s.Canvas()
	if len(paths) > 0 {
		c.SetBrush(mask.Brush{Size: *brush, Enabled: true})
	}
	for _, path := range paths {
		replay(c, path)
	}

	if err := writeMask(s, *maskOut); err != nil {
		log.Fatalf("Failed to save mask: %v", err)
	}
	if err := writePreview(s, *preview); err != nil {
		log.Fatalf("Failed to save preview: %v", err)
	}
	log.Printf("Mask saved to %s, preview to %s\n", *maskOut, *preview)

	if *prompt == "" {
		return
	}

	var obj []byte
	if *object != "" {
		if obj, err = os.ReadFile(*object); err != nil {
			log.Fatalf("Failed to read object: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	res, err := s.Submit(ctx, *prompt, obj)
	if err != nil {
		log.Fatalf("Edit failed: %v", err)
	}
	if err := os.WriteFile(*output, res.Image.Data, 0o600); err != nil {
		log.Fatalf("Failed to save edited image: %v", err)
	}
	if res.Text != "" {
		log.Printf("Model: %s\n", res.Text)
	}
	log.Printf("Edited image saved to %s\n", *output)
}

// replay feeds one stroke to the canvas as pointer events.
func replay(c *mask.Canvas, path []gg.Point) {
	for i, p := range path {
		kind := mask.Drag
		if i == 0 {
			kind = mask.Press
		}
		c.HandlePointer(mask.PointerEvent{Kind: kind, Position: p})
	}
	if len(path) == 1 {
		c.HandlePointer(mask.PointerEvent{Kind: mask.Drag, Position: path[0]})
	}
	c.HandlePointer(mask.PointerEvent{Kind: mask.Release})
}

func writeMask(s *photo.Session, path string) error {
	data, ok := s.Mask().ExportMask(context.Background())
	if !ok {
		return fmt.Errorf("no mask produced")
	}
	return os.WriteFile(path, data, 0o600)
}

func writePreview(s *photo.Session, path string) error {
	data, err := s.EncodeDisplay()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// parseStrokes parses "x,y x,y;x,y" into point lists.
func parseStrokes(input string) ([][]gg.Point, error) {
	var out [][]gg.Point
	for _, stroke := range strings.Split(input, ";") {
		fields := strings.Fields(stroke)
		if len(fields) == 0 {
			continue
		}
		path := make([]gg.Point, 0, len(fields))
		for _, f := range fields {
			xs, ys, ok := strings.Cut(f, ",")
			if !ok {
				return nil, fmt.Errorf("point %q: want x,y", f)
			}
			x, err := strconv.ParseFloat(xs, 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", f, err)
			}
			y, err := strconv.ParseFloat(ys, 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", f, err)
			}
			path = append(path, gg.Pt(x, y))
		}
		out = append(out, path)
	}
	return out, nil
}
