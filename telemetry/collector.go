package telemetry

import "github.com/cellab/lifegrid/life"

// Collector accumulates step results within generation windows and produces
// WindowStats. It observes the engine; it never feeds back into it.
type Collector struct {
	windowGens int
	boardCells int

	// Current window tracking
	windowStartGen int
	samples        []float64
	popMin, popMax int
	births         int
	deaths         int
	resets         int
	stalled        bool
	lastAlive      int

	// Recent window means for stability observation
	windowMeans []float64
	historySize int
}

// NewCollector creates a stats collector.
// windowGens: generations per stats window; boardCells: total cell count used
// for density.
func NewCollector(windowGens, boardCells int) *Collector {
	if windowGens < 1 {
		windowGens = 1
	}
	return &Collector{
		windowGens:  windowGens,
		boardCells:  boardCells,
		popMin:      -1,
		historySize: 10,
	}
}

// RecordStep records the outcome of one generation step.
func (c *Collector) RecordStep(res life.StepResult) {
	c.samples = append(c.samples, float64(res.Alive))
	c.births += res.Births
	c.deaths += res.Deaths
	c.lastAlive = res.Alive

	if c.popMin < 0 || res.Alive < c.popMin {
		c.popMin = res.Alive
	}
	if res.Alive > c.popMax {
		c.popMax = res.Alive
	}
}

// RecordReset records a board reseed and its starting population. The
// board's generation counter restarts at zero on reset, so the in-progress
// window restarts with it; callers that want the partial window reported
// must flush before recording the reset.
func (c *Collector) RecordReset(alive int) {
	c.resets++
	c.stalled = false
	c.lastAlive = alive

	c.windowStartGen = 0
	c.samples = c.samples[:0]
	c.popMin = -1
	c.popMax = 0
	c.births = 0
	c.deaths = 0
}

// HasSamples reports whether the current window holds unreported steps.
func (c *Collector) HasSamples() bool {
	return len(c.samples) > 0
}

// RecordStall records that the engine reached its terminal state.
func (c *Collector) RecordStall() {
	c.stalled = true
}

// ShouldFlush returns true if the current window is complete.
func (c *Collector) ShouldFlush(currentGen int) bool {
	return currentGen-c.windowStartGen >= c.windowGens
}

// Flush produces stats for the closed window and starts a new one.
func (c *Collector) Flush(currentGen int) WindowStats {
	mean, std := ComputePopulationStats(c.samples)

	popMin := c.popMin
	if popMin < 0 {
		popMin = 0
	}

	density := 0.0
	if c.boardCells > 0 {
		density = float64(c.lastAlive) / float64(c.boardCells)
	}

	stats := WindowStats{
		WindowStartGen: c.windowStartGen,
		WindowEndGen:   currentGen,
		Generations:    len(c.samples),
		Alive:          c.lastAlive,
		PopMean:        mean,
		PopStd:         std,
		PopMin:         popMin,
		PopMax:         c.popMax,
		Births:         c.births,
		Deaths:         c.deaths,
		Density:        density,
		Resets:         c.resets,
		Stalled:        c.stalled,
	}

	c.windowMeans = append(c.windowMeans, mean)
	if len(c.windowMeans) > c.historySize {
		c.windowMeans = c.windowMeans[1:]
	}

	// Reset window counters
	c.windowStartGen = currentGen
	c.samples = c.samples[:0]
	c.popMin = -1
	c.popMax = 0
	c.births = 0
	c.deaths = 0
	c.resets = 0

	return stats
}

// IsStable reports whether the last n window means varied less than the given
// coefficient-of-variation threshold. This is an observation for logs only;
// stall detection lives in the engine.
func (c *Collector) IsStable(n int, cvThreshold float64) bool {
	if len(c.windowMeans) < n {
		return false
	}
	recent := c.windowMeans[len(c.windowMeans)-n:]
	return CoefficientOfVariation(recent) < cvThreshold
}
