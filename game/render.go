package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cellab/lifegrid/ui"
)

// Draw renders the board and the control panel. Drawing only iterates cells
// and issues one rectangle per live cell; evolution never happens here.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(g.theme.Background)

	g.drawBoard()
	g.drawPanel()

	rl.EndDrawing()
}

// drawBoard draws the board backdrop, every live cell, and the border.
func (g *Game) drawBoard() {
	v := g.view
	cell := g.cfg.Derived.CellSize32

	rl.DrawRectangle(int32(v.OffsetX), int32(v.OffsetY),
		int32(v.BoardW), int32(v.BoardH), g.theme.BoardBg)

	// One pixel of gutter between cells keeps the lattice readable.
	size := int32(cell) - 1
	if size < 1 {
		size = 1
	}
	for _, c := range g.sim.Grid().Cells() {
		if !c.Alive {
			continue
		}
		sx, sy := v.CellOrigin(c.Col, c.Row, cell)
		rl.DrawRectangle(int32(sx), int32(sy), size, size, g.theme.CellAlive)
	}

	rl.DrawRectangleLines(int32(v.OffsetX), int32(v.OffsetY),
		int32(v.BoardW), int32(v.BoardH), g.theme.BoardBorder)
}

// drawPanel draws the control panel and applies its actions.
func (g *Game) drawPanel() {
	cells := g.sim.Grid().Cols() * g.sim.Grid().Rows()
	density := float32(0)
	if cells > 0 {
		density = float32(g.alive) / float32(cells)
	}

	status := ui.Status{
		Generation: g.sim.Generation(),
		Alive:      g.alive,
		Density:    density,
		Stalled:    g.sim.Stalled(),
		Paused:     g.paused,
	}

	actions := g.panel.Draw(int32(g.view.PanelOrigin()), int32(g.screenH), &g.controls, status)
	if actions.Reset {
		g.reset()
	}
	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.Step && g.paused {
		g.step()
	}
}
