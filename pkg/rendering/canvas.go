package rendering

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipPath restricts future drawing to the area the path would fill.
	// Inverse paths clip to their exterior.
	ClipPath(path *Path)

	// Clear fills the current clip with the given color, replacing what
	// was there.
	Clear(color Color)

	// DrawPath fills a path with the provided paint. If the paint carries
	// a shadow layer, the shadow is drawn first, beneath the fill.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
