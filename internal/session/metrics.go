package session

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const durationWindow = 256

// Metrics collects lightweight per-frame counters without affecting
// the frame path.
type Metrics struct {
	frames    uint64
	toggles   uint64
	durations []float64 // seconds, ring buffer of the last frames
	cursor    int
	filled    bool
}

// MetricsSnapshot is a point-in-time copy for reporting.
type MetricsSnapshot struct {
	Frames       uint64
	Toggles      uint64
	MeanStepTime time.Duration
}

func (m *Metrics) recordFrame(d time.Duration) {
	m.frames++
	if m.durations == nil {
		m.durations = make([]float64, durationWindow)
	}
	m.durations[m.cursor] = d.Seconds()
	m.cursor++
	if m.cursor == durationWindow {
		m.cursor = 0
		m.filled = true
	}
}

func (m *Metrics) recordToggle() {
	m.toggles++
}

// Snapshot reports the frame count and the mean step duration over the
// recent window.
func (m *Metrics) Snapshot() MetricsSnapshot {
	window := m.durations
	if !m.filled {
		window = m.durations[:m.cursor]
	}
	var mean float64
	if len(window) > 0 {
		mean = stat.Mean(window, nil)
	}
	return MetricsSnapshot{
		Frames:       m.frames,
		Toggles:      m.toggles,
		MeanStepTime: time.Duration(mean * float64(time.Second)),
	}
}
