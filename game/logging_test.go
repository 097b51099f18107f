package game

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/telemetry"
)

// newHeadlessGame loads default config with the given sampling interval.
func newHeadlessGame(t *testing.T, sampleEvery int) (*Game, string) {
	t.Helper()
	config.MustInit("")
	config.Cfg().Telemetry.SampleEvery = sampleEvery

	dir := t.TempDir()
	g, err := NewGameWithOptions(Options{Headless: true, OutputDir: dir})
	require.NoError(t, err)
	return g, dir
}

func readSamples(t *testing.T, dir string) []telemetry.Sample {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "readouts.csv"))
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	var rows []telemetry.Sample
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	return rows
}

func TestRecordSampleInterval(t *testing.T) {
	tests := []struct {
		name       string
		every      int
		wantFrames []int
	}{
		{"every frame", 1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"every third frame", 3, []int{3, 6, 9}},
		{"disabled", 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, dir := newHeadlessGame(t, tc.every)
			for i := 0; i < 10; i++ {
				g.UpdateHeadless()
			}
			g.Unload()

			var frames []int
			for _, s := range readSamples(t, dir) {
				frames = append(frames, s.Frame)
			}
			assert.Equal(t, tc.wantFrames, frames)
		})
	}
}

func TestRecordSampleReportsFailureOnce(t *testing.T) {
	var buf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(saved)

	g, _ := newHeadlessGame(t, 1)
	// Writes after close fail.
	require.NoError(t, g.output.Close())

	for i := 0; i < 5; i++ {
		g.UpdateHeadless()
	}

	assert.True(t, g.writeFailed)
	assert.Equal(t, 5, g.Frame())
	assert.Equal(t, 1, strings.Count(buf.String(), "writing readout sample"))
}
