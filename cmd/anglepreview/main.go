// Angle preview tool - drag raw angles with sliders and watch how they
// normalize and what signed difference comes out.
//
// Usage: go run ./cmd/anglepreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/geom"
)

const (
	windowWidth  = 900
	windowHeight = 520
	dialSize     = 440
	dialRadius   = 180
	panelWidth   = windowWidth - dialSize - 40

	sliderLimit = 4 * math.Pi
)

// previewParams holds the raw slider inputs.
type previewParams struct {
	Angle1 float32
	Angle2 float32
}

func defaultParams() previewParams {
	return previewParams{Angle1: 0.1, Angle2: float32(geom.Tau - 0.1)}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Angle Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	animating := false
	center := r2.Vec{X: 20 + dialSize/2, Y: 20 + dialSize/2}

	for !rl.WindowShouldClose() {
		if animating {
			params.Angle2 = wrapSlider(params.Angle2 + rl.GetFrameTime())
		}

		a1 := geom.NormalizeAngle(float64(params.Angle1))
		a2 := geom.NormalizeAngle(float64(params.Angle2))
		delta := geom.AngleBetween(float64(params.Angle1), float64(params.Angle2))

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Dial
		rl.DrawCircleLines(int32(center.X), int32(center.Y), dialRadius, rl.LightGray)
		rl.DrawLineV(vec(center), vec(r2.Add(center, r2.Vec{X: dialRadius})), rl.LightGray)
		drawRay(center, a1, dialRadius, rl.Red)
		drawRay(center, a2, dialRadius, rl.Blue)
		drawSweep(center, a1, delta, dialRadius*0.4, rl.DarkGray)

		// Control panel
		panelX := float32(dialSize + 30)
		panelY := float32(20)

		rl.DrawText("Raw angles (radians)", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		panelY = slider(panelX, panelY, "Angle 1", &params.Angle1)
		panelY = slider(panelX, panelY, "Angle 2", &params.Angle2)

		rl.DrawText("Results", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 30
		results := []struct {
			text  string
			color rl.Color
		}{
			{fmt.Sprintf("NormalizeAngle(a1) = %.4f (%.1f deg)", a1, geom.Degrees(a1)), rl.Red},
			{fmt.Sprintf("NormalizeAngle(a2) = %.4f (%.1f deg)", a2, geom.Degrees(a2)), rl.Blue},
			{fmt.Sprintf("AngleBetween(a1, a2) = %+.4f (%+.1f deg)", delta, geom.Degrees(delta)), rl.DarkGray},
			{fmt.Sprintf("AngleBetween(a2, a1) = %+.4f", geom.AngleBetween(float64(params.Angle2), float64(params.Angle1))), rl.Gray},
		}
		for _, r := range results {
			rl.DrawText(r.text, int32(panelX), int32(panelY), 16, r.color)
			panelY += 22
		}
		panelY += 15

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Swap") {
			params.Angle1, params.Angle2 = params.Angle2, params.Angle1
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Half Turn") {
			params.Angle2 = wrapSlider(params.Angle1 + math.Pi)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			animating = false
		}

		rl.DrawText("Press C to copy the case to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(fmt.Sprintf("{%v, %v, %v},", params.Angle1, params.Angle2, delta))
		}

		rl.EndDrawing()
	}
}

// slider draws a labeled slider bound to v and returns the next Y.
func slider(x, y float32, label string, v *float32) float32 {
	rl.DrawText(fmt.Sprintf("%s: %.3f", label, *v), int32(x), int32(y), 14, rl.Gray)
	y += 18
	*v = gui.SliderBar(
		rl.Rectangle{X: x + 30, Y: y, Width: float32(panelWidth - 90), Height: 20},
		"-4pi", "4pi",
		*v, -sliderLimit, sliderLimit,
	)
	return y + 35
}

func drawRay(center r2.Vec, angle, length float64, color rl.Color) {
	dir := geom.FlipY(r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
	rl.DrawLineEx(vec(center), vec(geom.ProjectAlong(center, dir, length)), 3, color)
}

// drawSweep outlines the rotation from angle by delta (counter-clockwise positive).
func drawSweep(center r2.Vec, angle, delta, radius float64, color rl.Color) {
	start := float32(-geom.Degrees(angle + delta))
	end := float32(-geom.Degrees(angle))
	if start > end {
		start, end = end, start
	}
	rl.DrawRingLines(vec(center), 0, float32(radius), start, end, 0, color)
}

func wrapSlider(v float32) float32 {
	if v > sliderLimit {
		v -= 2 * sliderLimit
	}
	return v
}

func vec(p r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
