package telemetry

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	assert.Equal(t, 5, stats.Frames)
	assert.Greater(t, stats.AvgFrameDuration, time.Duration(0))
	assert.LessOrEqual(t, stats.MinFrameDuration, stats.MaxFrameDuration)
	assert.Contains(t, stats.PhaseAvg, PhaseUpdate)
	assert.Contains(t, stats.PhaseAvg, PhaseDraw)
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseReadout)
		pc.EndFrame()
	}

	assert.Equal(t, 5, pc.Stats().Frames)
}

func TestPerfCollector_Empty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	assert.Equal(t, 0, stats.Frames)
	assert.Empty(t, stats.PhaseAvg)
	assert.Equal(t, slog.KindGroup, stats.LogValue().Kind())
}
