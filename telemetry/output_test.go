package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/scene"
)

func TestNilOutputManagerIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	assert.NoError(t, om.WriteSample(Sample{}))
	assert.NoError(t, om.WriteConfig(nil))
	assert.NoError(t, om.Close())
	assert.Equal(t, "", om.Dir())
}

func TestWriteSamplesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteSample(Sample{Frame: 1, Dot: 0.5}))
	require.NoError(t, om.WriteSample(Sample{Frame: 2, Cross: -0.25}))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "readouts.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "frame,"))

	var rows []Sample
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Frame)
	assert.Equal(t, 0.5, rows[0].Dot)
	assert.Equal(t, -0.25, rows[1].Cross)
}

func TestWriteConfigSnapshot(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	defer om.Close()

	require.NoError(t, om.WriteConfig(cfg))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.Equal(t, dir, om.Dir())
}

func TestSampleFrom(t *testing.T) {
	s := SampleFrom(scene.Readout{
		Frame:  7,
		Angles: [2]float64{0, math.Pi / 2},
		Delta:  math.Pi / 2,
		Dot:    0,
		Cross:  1,
	})

	assert.Equal(t, 7, s.Frame)
	assert.InDelta(t, 90.0, s.BlueAngleDeg, 1e-9)
	assert.InDelta(t, 90.0, s.DeltaDeg, 1e-9)
	assert.Equal(t, 1.0, s.Cross)
}
