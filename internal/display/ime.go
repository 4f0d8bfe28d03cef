package display

// Point is a terminal grid coordinate.
type Point struct {
	Line   int
	Column int
}

// SizeInfo carries the terminal's pixel geometry needed to translate
// grid coordinates into device pixels.
type SizeInfo struct {
	PaddingX   float32
	PaddingY   float32
	CellWidth  float32
	CellHeight float32
}

// UpdateIMEPosition anchors the input-method popup to the terminal
// cursor. Must be re-sent on every cursor move and cell-size change.
func (w *Window) UpdateIMEPosition(point Point, size SizeInfo) {
	// X11 places the candidate window relative to the spot itself, so
	// shift down one line to keep the edited text visible.
	offset := 0
	if w.isX11 {
		offset = 1
	}
	x := float64(size.PaddingX) + float64(point.Column)*float64(size.CellWidth)
	y := float64(size.PaddingY) + float64(point.Line+offset)*float64(size.CellHeight)

	// Exclude a full-width character: compositors that get a larger
	// area sometimes push the popup to its bottom-right corner, and a
	// smaller one would let it obscure a double-width glyph.
	width := float64(size.CellWidth) * 2
	height := float64(size.CellHeight)

	w.native.SetIMECursorArea(x, y, width, height)
}
