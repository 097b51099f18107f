// Package ui draws the HUD and the overlay controls panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dotcross/renderer"
	"github.com/pthm-cable/dotcross/scene"
)

const checkBoxSize = 14

// ControlsPanel renders a clickable panel with one checkbox per overlay
// and bars for the dot and cross products.
type ControlsPanel struct {
	renderer *Renderer
	palette  renderer.Palette
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new, hidden controls panel.
func NewControlsPanel(p renderer.Palette, x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		palette:  p,
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel. Clicking a checkbox updates the registry directly.
func (c *ControlsPanel) Draw(overlays *scene.OverlayRegistry, r scene.Readout) {
	if !c.visible {
		return
	}

	th := c.renderer.Theme
	categories := overlays.Categories()
	rows := int32(len(overlays.All()) + len(categories) + 3)
	c.renderer.DrawPanel(c.x, c.y, c.width, rows*th.LineHeight+th.Padding*2)

	x := c.x + th.Padding
	y := c.y + th.Padding
	rl.DrawText("Overlays", x, y, 16, rl.White)
	y += th.LineHeight

	for _, category := range categories {
		y = c.renderer.DrawSectionHeader(x, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: checkBoxSize, Height: checkBoxSize}
			label := desc.Name
			if desc.Key != "" {
				label = fmt.Sprintf("%s [%s]", desc.Name, desc.Key)
			}
			checked := gui.CheckBox(bounds, label, overlays.IsEnabled(desc.ID))
			overlays.SetEnabled(desc.ID, checked)
			y += th.LineHeight
		}
	}

	y += th.Padding / 2
	y = c.renderer.DrawCenteredBar(x, y, "Dot", float32(r.Dot), 1, c.width-th.Padding*2, c.palette.DotProduct)
	c.renderer.DrawCenteredBar(x, y, "Cross", float32(r.Cross), 1, c.width-th.Padding*2, c.palette.CrossProduct)
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "projection":
		return "Projections"
	case "display":
		return "Display"
	default:
		return cat
	}
}
