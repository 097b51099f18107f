package game

import (
	"log/slog"

	"github.com/pthm-cable/dotcross/geom"
	"github.com/pthm-cable/dotcross/telemetry"
)

// recordSample writes the current readout to CSV every Telemetry.SampleEvery frames.
func (g *Game) recordSample() {
	every := g.cfg.Telemetry.SampleEvery
	if g.output == nil || every == 0 || g.readout.Frame%every != 0 {
		return
	}
	if err := g.output.WriteSample(telemetry.SampleFrom(g.readout)); err != nil {
		// Only the first failure is reported.
		if !g.writeFailed {
			slog.Error("writing readout sample", "frame", g.readout.Frame, "error", err)
			g.writeFailed = true
		}
	}
}

// logStats emits a structured stats line every Telemetry.LogEvery frames.
func (g *Game) logStats() {
	every := g.cfg.Telemetry.LogEvery
	if !g.opts.LogStats || every == 0 || g.readout.Frame%every != 0 {
		return
	}
	r := g.readout
	slog.Info("frame",
		"frame", r.Frame,
		"red_angle_deg", geom.Degrees(r.Angles[0]),
		"blue_angle_deg", geom.Degrees(r.Angles[1]),
		"delta_rad", r.Delta,
		"dot", r.Dot,
		"cross", r.Cross,
		"overlays", g.state.Overlays.EnabledOverlays(),
		"perf", g.perf.Stats(),
	)
}
