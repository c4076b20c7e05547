package life

import "math/rand"

// State identifies whether the simulation is still advancing generations.
type State int

const (
	// Running means steps still advance the board.
	Running State = iota
	// Stalled is terminal until an external reset: a step observed no cell
	// change, so every further step would reproduce the same board.
	Stalled
)

// Simulation owns the board and the stall state machine. The driver holds
// exactly one instance and calls Step at its own cadence; nothing here is
// shared or locked.
type Simulation struct {
	grid       *Grid
	generation int
	state      State
	rng        *rand.Rand
}

// NewSimulation builds a simulation with an all-dead board and the injected
// random source. The caller seeds via Reset.
func NewSimulation(cols, rows int, rng *rand.Rand) (*Simulation, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	return &Simulation{grid: grid, rng: rng, state: Running}, nil
}

// Grid returns the current board.
func (s *Simulation) Grid() *Grid { return s.grid }

// Generation returns the number of steps taken since the last reset.
func (s *Simulation) Generation() int { return s.generation }

// State returns the current stall state.
func (s *Simulation) State() State { return s.state }

// Stalled reports whether the simulation has reached its terminal state.
func (s *Simulation) Stalled() bool { return s.state == Stalled }

// Reset reseeds the board with the given probability and re-enters Running.
// The configuration knobs themselves are owned by the driver; reset only
// consumes the probability it is handed.
func (s *Simulation) Reset(probability int) {
	s.grid.Seed(s.rng, probability)
	s.generation = 0
	s.state = Running
}

// Step advances one generation and updates the stall state. The board stalls
// when no cell changed, which covers both static patterns and all-dead boards
// (a dead board is a fixed point and stalls on its first step). Once stalled,
// Step leaves the board untouched.
func (s *Simulation) Step() StepResult {
	if s.state == Stalled {
		return StepResult{Alive: s.grid.CountAlive()}
	}

	res := Step(s.grid)
	s.generation++
	if !res.Changed {
		s.state = Stalled
	}
	return res
}
