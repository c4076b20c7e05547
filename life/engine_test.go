package life

import (
	"math/rand"
	"testing"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"lonely dies", true, 0, false},
		{"one neighbor dies", true, 1, false},
		{"two neighbors survives", true, 2, true},
		{"three neighbors survives", true, 3, true},
		{"four neighbors dies", true, 4, false},
		{"eight neighbors dies", true, 8, false},
		{"dead stays dead", false, 0, false},
		{"dead with two stays dead", false, 2, false},
		{"dead with three is born", false, 3, true},
		{"dead with four stays dead", false, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextState(tt.alive, tt.neighbors); got != tt.want {
				t.Errorf("nextState(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
			}
		})
	}
}

// A vertical blinker on a 3x3 board flips to horizontal. Under clamped
// boundaries the column ends see only 2 neighbors and die; a toroidal
// implementation would behave differently, which is what this pins down.
func TestBlinkerClampedBoundaries(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 0, true)
	g.Set(1, 1, true)
	g.Set(1, 2, true)

	res := Step(g)

	if !res.Changed {
		t.Error("expected the blinker to change")
	}
	if res.Alive != 3 {
		t.Errorf("expected 3 alive cells, got %d", res.Alive)
	}

	wantAlive := map[[2]int]bool{
		{0, 1}: true, {1, 1}: true, {2, 1}: true,
	}
	for _, cell := range g.Cells() {
		want := wantAlive[[2]int{cell.Col, cell.Row}]
		if cell.Alive != want {
			t.Errorf("cell (%d,%d): alive = %v, want %v", cell.Col, cell.Row, cell.Alive, want)
		}
	}
}

func TestBlinkerBirthsAndDeaths(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 0, true)
	g.Set(1, 1, true)
	g.Set(1, 2, true)

	res := Step(g)

	if res.Births != 2 {
		t.Errorf("expected 2 births, got %d", res.Births)
	}
	if res.Deaths != 2 {
		t.Errorf("expected 2 deaths, got %d", res.Deaths)
	}
}

// A 2x2 block in the interior of a 4x4 board is a fixed point, and a step on
// the fixed point must reproduce it exactly.
func TestBlockFixedPoint(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 2, true)

	for i := 0; i < 3; i++ {
		res := Step(g)
		if res.Changed {
			t.Fatalf("step %d: block changed unexpectedly", i)
		}
		if res.Alive != 4 {
			t.Fatalf("step %d: expected 4 alive, got %d", i, res.Alive)
		}
	}
}

// A single live cell on a 1x1 board has zero possible neighbors and dies in
// one generation.
func TestSingleCellBoardDies(t *testing.T) {
	g := mustGrid(t, 1, 1)
	g.Set(0, 0, true)

	res := Step(g)

	if !res.Changed {
		t.Error("expected the lone cell to die")
	}
	if res.Alive != 0 || res.Deaths != 1 {
		t.Errorf("expected extinction with 1 death, got alive=%d deaths=%d", res.Alive, res.Deaths)
	}
}

// Stepping two identically seeded boards must produce identical results: the
// step reads only the pre-step generation, never its own partial output.
func TestStepDeterministic(t *testing.T) {
	a := mustGrid(t, 30, 30)
	b := mustGrid(t, 30, 30)
	a.Seed(rand.New(rand.NewSource(7)), 50)
	b.Seed(rand.New(rand.NewSource(7)), 50)

	for gen := 0; gen < 10; gen++ {
		ra := Step(a)
		rb := Step(b)
		if ra != rb {
			t.Fatalf("generation %d: diverging results %+v vs %+v", gen, ra, rb)
		}
		for i := range a.Cells() {
			if a.Cells()[i].Alive != b.Cells()[i].Alive {
				t.Fatalf("generation %d: boards diverged at cell %d", gen, i)
			}
		}
	}
}

// Cells scanned later in raster order must not see already-updated neighbors.
// A row of three at the top-left corner exercises exactly that hazard: the
// in-place variant would kill (0,0) before (1,0) counts its neighbors.
func TestStepReadsPreStepGeneration(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	g.Set(2, 0, true)

	Step(g)

	// Horizontal blinker clamped against the top edge: only (1,0) and its
	// vertical neighbor (1,1) remain.
	wantAlive := map[[2]int]bool{
		{1, 0}: true, {1, 1}: true,
	}
	for _, cell := range g.Cells() {
		want := wantAlive[[2]int{cell.Col, cell.Row}]
		if cell.Alive != want {
			t.Errorf("cell (%d,%d): alive = %v, want %v", cell.Col, cell.Row, cell.Alive, want)
		}
	}
}
