// Package spectrum evaluates frequency-domain views of discrete sequences.
//
// DTFT evaluates X(e^{jω}) = Σ x[n]·e^{−jωn} directly on an arbitrary
// frequency grid and honours the sequence start index, so a shifted sequence
// picks up the expected linear phase. FFT computes sampled spectra through
// algo-fft. The remaining helpers turn complex bins into magnitude, power,
// phase, and dB views for plotting.
package spectrum
