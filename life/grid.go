package life

import (
	"fmt"
	"math/rand"
)

// Grid is a fixed-size board of cells stored in raster order. Dimensions are
// constant for the lifetime of a Grid; a fresh board is built on reset.
type Grid struct {
	cols, rows int
	cells      []Cell

	// Scratch buffer for the next generation. The step writes every next
	// state here before committing, so neighbor counts always read the
	// pre-step generation.
	next []bool
}

// NewGrid creates an all-dead grid. Zero-area grids are valid; negative
// dimensions are not.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("life: invalid grid dimensions %dx%d", cols, rows)
	}

	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
		next:  make([]bool, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[row*cols+col] = Cell{Col: col, Row: row}
		}
	}
	return g, nil
}

// Cols returns the board width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the board height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cells exposes the board in raster order for rendering.
func (g *Grid) Cells() []Cell { return g.cells }

// Get returns the alive state at (col, row). Out-of-range positions are dead.
func (g *Grid) Get(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	return g.cells[row*g.cols+col].Alive
}

// Set writes the alive state at (col, row). Out-of-range positions are ignored.
func (g *Grid) Set(col, row int, alive bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col].Alive = alive
}

// Seed randomizes the board: each cell independently draws a uniform integer
// in [1,100] and is alive iff the draw is <= probability. Probability is
// clamped to [0,100], so 0 never seeds a live cell and 100 always does.
func (g *Grid) Seed(rng *rand.Rand, probability int) {
	probability = ClampProbability(probability)
	for i := range g.cells {
		g.cells[i].Alive = 1+rng.Intn(100) <= probability
	}
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() (count int) {
	for i := range g.cells {
		if g.cells[i].Alive {
			count++
		}
	}
	return count
}

// liveNeighbors counts live cells in the clamped neighbor window around
// (col, row), excluding the cell itself. Edge and corner cells see fewer than
// 8 candidates; there is no wraparound.
func (g *Grid) liveNeighbors(col, row int) int {
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if c == col && r == row {
				continue
			}
			if g.cells[r*g.cols+c].Alive {
				count++
			}
		}
	}
	return count
}

// ClampProbability restricts a seed probability to [0,100].
func ClampProbability(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
