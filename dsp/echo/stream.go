package echo

import (
	"github.com/cwbudde/dsplab/dsp/core"
	"github.com/cwbudde/dsplab/dsp/delay"
)

// Adder applies the forward echo model one sample at a time.
type Adder struct {
	p    Params
	line *delay.Line
}

// NewAdder returns a streaming echo generator with zero history.
func NewAdder(p Params) (*Adder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	line, err := delay.New(p.Delay + 1)
	if err != nil {
		return nil, err
	}
	return &Adder{p: p, line: line}, nil
}

// Params returns the echo parameters.
func (a *Adder) Params() Params { return a.p }

// ProcessSample returns y + α·y[n−D].
func (a *Adder) ProcessSample(y float64) float64 {
	return y + a.p.Alpha*a.line.Process(y, a.p.Delay)
}

// ProcessBlock processes buf in place.
func (a *Adder) ProcessBlock(buf []float64) {
	for i, v := range buf {
		buf[i] = a.ProcessSample(v)
	}
}

// ProcessBlockTo processes src into dst. Both slices must have the same length.
func (a *Adder) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, v := range src {
		dst[i] = a.ProcessSample(v)
	}
}

// Reset clears the history.
func (a *Adder) Reset() { a.line.Reset() }

// Remover applies the inverse recursion one sample at a time.
type Remover struct {
	p    Params
	line *delay.Line // past outputs
}

// NewRemover returns a streaming echo canceller with zero history.
func NewRemover(p Params) (*Remover, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	line, err := delay.New(p.Delay)
	if err != nil {
		return nil, err
	}
	return &Remover{p: p, line: line}, nil
}

// Params returns the echo parameters.
func (r *Remover) Params() Params { return r.p }

// ProcessSample returns x − α·y[n−D] and records it as y[n].
func (r *Remover) ProcessSample(x float64) float64 {
	// Before writing y[n], Read(D-1) is y[n-D].
	y := core.FlushDenormals(x - r.p.Alpha*r.line.Read(r.p.Delay-1))
	r.line.Write(y)
	return y
}

// ProcessBlock processes buf in place.
func (r *Remover) ProcessBlock(buf []float64) {
	for i, v := range buf {
		buf[i] = r.ProcessSample(v)
	}
}

// ProcessBlockTo processes src into dst. Both slices must have the same length.
func (r *Remover) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, v := range src {
		dst[i] = r.ProcessSample(v)
	}
}

// Reset clears the history.
func (r *Remover) Reset() { r.line.Reset() }
