package camera

import "testing"

func TestNewCentersBoard(t *testing.T) {
	v := New(1000, 600, 600, 400, 200)

	// Canvas is 800 wide after the panel; board centered inside it
	if v.OffsetX != 100 {
		t.Errorf("expected OffsetX 100, got %f", v.OffsetX)
	}
	if v.OffsetY != 100 {
		t.Errorf("expected OffsetY 100, got %f", v.OffsetY)
	}
}

func TestResizeRepositions(t *testing.T) {
	v := New(1000, 600, 600, 400, 200)

	v.Resize(1200, 700)

	if v.OffsetX != 200 {
		t.Errorf("expected OffsetX 200 after resize, got %f", v.OffsetX)
	}
	if v.OffsetY != 150 {
		t.Errorf("expected OffsetY 150 after resize, got %f", v.OffsetY)
	}

	// Board size never changes with the window
	if v.BoardW != 600 || v.BoardH != 400 {
		t.Errorf("board size changed on resize: %fx%f", v.BoardW, v.BoardH)
	}
}

func TestOffsetsClampAtZero(t *testing.T) {
	// Window smaller than the board: pin to the top-left, never negative
	v := New(500, 300, 600, 400, 200)

	if v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("expected offsets clamped to 0, got (%f, %f)", v.OffsetX, v.OffsetY)
	}
}

func TestCellOrigin(t *testing.T) {
	v := New(1000, 600, 600, 400, 200)

	sx, sy := v.CellOrigin(0, 0, 10)
	if sx != v.OffsetX || sy != v.OffsetY {
		t.Errorf("cell (0,0) must sit at the board origin, got (%f, %f)", sx, sy)
	}

	sx, sy = v.CellOrigin(3, 5, 10)
	if sx != v.OffsetX+30 || sy != v.OffsetY+50 {
		t.Errorf("cell (3,5) misplaced: (%f, %f)", sx, sy)
	}
}

func TestPanelOrigin(t *testing.T) {
	v := New(1000, 600, 600, 400, 200)
	if v.PanelOrigin() != 800 {
		t.Errorf("expected panel at x=800, got %f", v.PanelOrigin())
	}

	v.Resize(1100, 600)
	if v.PanelOrigin() != 900 {
		t.Errorf("expected panel at x=900 after resize, got %f", v.PanelOrigin())
	}
}
