package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input and window events.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}

	// Single step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyN) {
		g.step()
	}
}

// handleResize checks for window resize and repositions the board. The grid
// keeps its dimensions; only its placement on screen changes.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h
	g.view.Resize(w, h)
}
