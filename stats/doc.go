// Package stats summarises sample buffers and compares a processed buffer
// with its reference, reporting error and signal-to-noise figures.
package stats
