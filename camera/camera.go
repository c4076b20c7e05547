// Package camera places the fixed-size board inside the window viewport.
package camera

// Viewport tracks where the board sits on screen. The board's pixel size is
// fixed for a run; only the offsets move when the window is resized.
type Viewport struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Board dimensions in pixels
	BoardW, BoardH float32

	// Reserved margin on the right edge for the control panel
	PanelW float32

	// Top-left corner of the board on screen
	OffsetX, OffsetY float32
}

// New creates a viewport with the board centered in the canvas area left of
// the control panel.
func New(viewportW, viewportH, boardW, boardH, panelW float32) *Viewport {
	v := &Viewport{
		ViewportW: viewportW,
		ViewportH: viewportH,
		BoardW:    boardW,
		BoardH:    boardH,
		PanelW:    panelW,
	}
	v.reposition()
	return v
}

// reposition recenters the board in the canvas area.
func (v *Viewport) reposition() {
	canvasW := v.ViewportW - v.PanelW
	v.OffsetX = (canvasW - v.BoardW) / 2
	v.OffsetY = (v.ViewportH - v.BoardH) / 2
	if v.OffsetX < 0 {
		v.OffsetX = 0
	}
	if v.OffsetY < 0 {
		v.OffsetY = 0
	}
}

// Resize updates viewport dimensions and recenters the board. Board size is
// untouched; the grid never changes dimensions mid-run.
func (v *Viewport) Resize(viewportW, viewportH float32) {
	if viewportW == v.ViewportW && viewportH == v.ViewportH {
		return
	}
	v.ViewportW = viewportW
	v.ViewportH = viewportH
	v.reposition()
}

// CellOrigin returns the screen position of the top-left corner of the cell
// at (col, row).
func (v *Viewport) CellOrigin(col, row int, cellSize float32) (sx, sy float32) {
	return v.OffsetX + float32(col)*cellSize, v.OffsetY + float32(row)*cellSize
}

// PanelOrigin returns the screen X position where the control panel starts.
func (v *Viewport) PanelOrigin() float32 {
	return v.ViewportW - v.PanelW
}
