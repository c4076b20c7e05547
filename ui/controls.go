package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slider ranges for the two control values.
const (
	MinFrameRate = 1
	MaxFrameRate = 100

	MinSeedProbability = 0
	MaxSeedProbability = 100
)

// ControlsState holds the user-owned control values. The driver reads
// FrameRate once per frame and SeedProbability once per reset; only the
// sliders write them. A reset never rewrites the slider positions.
type ControlsState struct {
	FrameRate       int // generations per second
	SeedProbability int // percent chance a cell seeds alive
}

// Status is the engine-side readout shown in the panel.
type Status struct {
	Generation int
	Alive      int
	Density    float32
	Stalled    bool
	Paused     bool
}

// Actions reports the button presses from one frame of the panel.
type Actions struct {
	Reset       bool
	TogglePause bool
	Step        bool
}

// ControlsPanel renders the right-side control panel: the rate and density
// sliders, the reset and pause buttons, and the simulation status readout.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a controls panel of the given width.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Draw renders the panel at the given origin, mutating state through the
// sliders, and returns the actions the user triggered this frame.
func (p *ControlsPanel) Draw(x, height int32, state *ControlsState, status Status) Actions {
	r := p.renderer
	padding := r.Theme.Padding
	sliderW := float32(p.width - padding*2 - 40)

	r.DrawPanel(x, 0, p.width, height)

	cx := x + padding
	y := padding

	rl.DrawText("Game of Life", cx, y, 18, rl.White)
	y += r.Theme.LineHeight + 8

	y = r.DrawSectionHeader(cx, y, "Controls")

	// Rate slider: read back every frame by the driver
	r.DrawLabel(cx, y, "Speed (gen/sec)")
	y += r.Theme.LineHeight
	newRate := gui.SliderBar(
		rl.Rectangle{X: float32(cx), Y: float32(y), Width: sliderW, Height: 16},
		"", "",
		float32(state.FrameRate), MinFrameRate, MaxFrameRate,
	)
	rl.DrawText(fmt.Sprintf("%d", state.FrameRate), cx+int32(sliderW)+8, y+2, r.Theme.FontSize, r.Theme.ValueColor)
	state.FrameRate = int(newRate)
	y += 26

	// Density slider: read back only at reset time
	r.DrawLabel(cx, y, "Seed density (%)")
	y += r.Theme.LineHeight
	newProb := gui.SliderBar(
		rl.Rectangle{X: float32(cx), Y: float32(y), Width: sliderW, Height: 16},
		"", "",
		float32(state.SeedProbability), MinSeedProbability, MaxSeedProbability,
	)
	rl.DrawText(fmt.Sprintf("%d", state.SeedProbability), cx+int32(sliderW)+8, y+2, r.Theme.FontSize, r.Theme.ValueColor)
	state.SeedProbability = int(newProb)
	y += 30

	var actions Actions
	buttonW := (float32(p.width) - float32(padding)*3) / 2
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y), Width: buttonW, Height: 26}, "Reset") {
		actions.Reset = true
	}
	pauseLabel := "Pause"
	if status.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(cx) + buttonW + float32(padding), Y: float32(y), Width: buttonW, Height: 26}, pauseLabel) {
		actions.TogglePause = true
	}
	y += 32

	if status.Paused {
		if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y), Width: buttonW, Height: 26}, "Step") {
			actions.Step = true
		}
		y += 32
	}

	y = r.DrawSpacer(y, 8)
	y = r.DrawSectionHeader(cx, y, "Status")
	y = r.DrawLabelValue(cx, y, "Generation", fmt.Sprintf("%d", status.Generation))
	y = r.DrawLabelValue(cx, y, "Alive", fmt.Sprintf("%d", status.Alive))
	y = r.DrawBar(cx, y, "Density", status.Density, p.width-padding*2)

	if status.Stalled {
		y += 6
		rl.DrawText("Stalled - press Reset", cx, y, r.Theme.HeaderFontSize, r.Theme.StalledColor)
	}

	return actions
}
