// Package signal synthesises sampled "continuous-time" signals: tones,
// decaying exponentials, sweeps, noise, and the nine second demo clip used by
// the echo examples when no recording is supplied.
//
// A Generator carries the sample rate (core.ProcessorOption) and a noise seed
// (Option). Every generator returns a freshly allocated slice.
package signal
