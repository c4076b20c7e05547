package life

// StepResult reports what one generation step observed.
type StepResult struct {
	// Changed is true if any cell's alive state differs from the previous
	// generation. A step with Changed == false means the board has reached
	// a fixed point.
	Changed bool

	// Alive is the live-cell count after the step.
	Alive int

	// Births and Deaths count the cells that turned alive and dead during
	// the step.
	Births, Deaths int
}

// nextState applies the survival/birth rule to a single cell:
// (alive && neighbors == 2) || neighbors == 3.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step advances the grid one generation. Every next state is computed from the
// pre-step generation into a scratch buffer and committed afterwards, so scan
// order never leaks into neighbor counts. Repeated calls on identical boards
// produce identical results.
func Step(g *Grid) StepResult {
	var res StepResult

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i := row*g.cols + col
			cur := g.cells[i].Alive
			nxt := nextState(cur, g.liveNeighbors(col, row))
			g.next[i] = nxt

			if nxt != cur {
				res.Changed = true
				if nxt {
					res.Births++
				} else {
					res.Deaths++
				}
			}
			if nxt {
				res.Alive++
			}
		}
	}

	// Commit
	for i := range g.cells {
		g.cells[i].Alive = g.next[i]
	}
	return res
}
