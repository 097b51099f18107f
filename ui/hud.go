package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dotcross/renderer"
	"github.com/pthm-cable/dotcross/scene"
)

// HUD renders the readout text and key prompts.
type HUD struct {
	palette  renderer.Palette
	fontSize int32
	margin   int32
}

// NewHUD creates a HUD drawing text at fontSize with margin pixels of padding.
func NewHUD(p renderer.Palette, fontSize, margin int32) *HUD {
	return &HUD{palette: p, fontSize: fontSize, margin: margin}
}

// Draw renders readout lines from the top-left corner down.
func (h *HUD) Draw(lines []scene.Line) {
	y := h.margin
	for _, line := range lines {
		rl.DrawText(line.Text, h.margin, y, h.fontSize, h.palette.ForRole(line.Role))
		y += h.fontSize
	}
}

// DrawPrompts renders prompt lines so the last one sits on the bottom margin.
func (h *HUD) DrawPrompts(lines []scene.Line, screenHeight int32) {
	y := screenHeight - h.margin
	for i := len(lines) - 1; i >= 0; i-- {
		y -= h.fontSize
		rl.DrawText(lines[i].Text, h.margin, y, h.fontSize, h.palette.ForRole(lines[i].Role))
	}
}
