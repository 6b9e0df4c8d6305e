// Package delay provides an integer-sample circular delay line.
package delay

import (
	"fmt"

	"github.com/cwbudde/dsplab/dsp/core"
)

// Line is a circular buffer holding the most recent Len() samples.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line able to reach size-1 samples into the past.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write pushes one sample, overwriting the oldest.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written k writes before the most recent one.
// Read(0) is the most recent sample; k must be in [0, Len()-1].
// Positions never written read as zero.
func (d *Line) Read(k int) float64 {
	size := len(d.buffer)
	pos := d.writePos - 1 - k
	for pos < 0 {
		pos += size
	}
	return d.buffer[pos]
}

// Process writes sample and returns the value written k steps earlier,
// i.e. x[n-k] for the current input x[n]. Process(x, 0) returns x.
func (d *Line) Process(sample float64, k int) float64 {
	d.Write(sample)
	return d.Read(k)
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
