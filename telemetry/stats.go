package telemetry

import (
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a block of generations.
type WindowStats struct {
	WindowStartGen int `csv:"-"`
	WindowEndGen   int `csv:"window_end"`
	Generations    int `csv:"generations"`

	// Population at window end and over the window
	Alive   int     `csv:"alive"`
	PopMean float64 `csv:"pop_mean"`
	PopStd  float64 `csv:"pop_std"`
	PopMin  int     `csv:"pop_min"`
	PopMax  int     `csv:"pop_max"`

	// Cell transitions during the window
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Board occupancy at window end, in [0,1]
	Density float64 `csv:"density"`

	// Events during the window
	Resets  int  `csv:"resets"`
	Stalled bool `csv:"stalled"`
}

// ComputePopulationStats calculates mean and standard deviation of per-step
// live-cell samples. Returns zeros for empty input.
func ComputePopulationStats(samples []float64) (mean, std float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}
	return mean, std
}

// CoefficientOfVariation returns std/mean for the given samples, or 0 when the
// mean is 0. Low values over consecutive windows indicate a settled board.
func CoefficientOfVariation(samples []float64) float64 {
	mean, std := ComputePopulationStats(samples)
	if mean == 0 {
		return 0
	}
	return std / mean
}
