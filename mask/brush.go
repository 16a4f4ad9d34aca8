package mask

// Brush is the user's brush state. Size is given in display pixels.
type Brush struct {
	Size    float64
	Enabled bool
}

// NativeWidth converts the brush size into native image pixels so that a
// stroke keeps the same apparent thickness on screen whatever the image
// resolution. It returns 0 when either width is not positive.
func (b Brush) NativeWidth(imageWidth, surfaceWidth int) float64 {
	if imageWidth <= 0 || surfaceWidth <= 0 || b.Size <= 0 {
		return 0
	}
	return b.Size * float64(imageWidth) / float64(surfaceWidth)
}
