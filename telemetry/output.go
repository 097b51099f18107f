// Package telemetry records frame readouts and timing for later inspection.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/geom"
	"github.com/pthm-cable/dotcross/scene"
)

// Sample is one CSV row of readouts.
type Sample struct {
	Frame           int     `csv:"frame"`
	RedAngleRad     float64 `csv:"red_angle_rad"`
	RedAngleDeg     float64 `csv:"red_angle_deg"`
	BlueAngleRad    float64 `csv:"blue_angle_rad"`
	BlueAngleDeg    float64 `csv:"blue_angle_deg"`
	DeltaRad        float64 `csv:"delta_rad"`
	DeltaDeg        float64 `csv:"delta_deg"`
	Dot             float64 `csv:"dot"`
	Cross           float64 `csv:"cross"`
	DotProjection   float64 `csv:"dot_projection"`
	CrossProjection float64 `csv:"cross_projection"`
}

// SampleFrom flattens a readout into a CSV row.
func SampleFrom(r scene.Readout) Sample {
	return Sample{
		Frame:           r.Frame,
		RedAngleRad:     r.Angles[0],
		RedAngleDeg:     geom.Degrees(r.Angles[0]),
		BlueAngleRad:    r.Angles[1],
		BlueAngleDeg:    geom.Degrees(r.Angles[1]),
		DeltaRad:        r.Delta,
		DeltaDeg:        geom.Degrees(r.Delta),
		Dot:             r.Dot,
		Cross:           r.Cross,
		DotProjection:   r.DotProjection,
		CrossProjection: r.CrossProjection,
	}
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	samplesFile *os.File

	samplesHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "readouts.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating readouts.csv: %w", err)
	}

	return &OutputManager{dir: dir, samplesFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSample writes one readout row to readouts.csv.
func (om *OutputManager) WriteSample(s Sample) error {
	if om == nil {
		return nil
	}

	records := []Sample{s}

	if !om.samplesHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.samplesFile); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
		om.samplesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.samplesFile); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.samplesFile == nil {
		return nil
	}
	err := om.samplesFile.Close()
	om.samplesFile = nil
	return err
}
