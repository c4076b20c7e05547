// Package life implements the fixed-size Game of Life board: cells, seeded
// initialization, the generation step under clamped (non-wrapping) boundaries,
// and stall detection.
package life

// Cell is one board position with its alive state. Cells are created once per
// position when a board is built; only Alive changes afterwards, once per
// generation.
type Cell struct {
	Col, Row int
	Alive    bool
}
