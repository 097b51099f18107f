package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/config"
)

// windowInput reads the raylib mouse and keyboard.
type windowInput struct{}

func (windowInput) Cursor() r2.Vec {
	p := rl.GetMousePosition()
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (windowInput) IsKeyDown(key string) bool {
	return rl.IsKeyDown(keyCode(key))
}

func (windowInput) IsKeyPressed(key string) bool {
	return rl.IsKeyPressed(keyCode(key))
}

// keyCode maps a letter binding to its raylib key, 0 for none.
func keyCode(key string) int32 {
	if !config.IsKeyName(key) {
		return 0
	}
	return rl.KeyA + int32(key[0]-'A')
}

// handleInput processes window-level keys. Scene keys are handled by scene.State.Update.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.controls.Toggle()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.controls.SetPosition(int32(w)-controlsPanelWidth-g.cfg.Derived.Margin, g.cfg.Derived.Margin)
}
