// Package sampleio reads and writes mono sample buffers.
//
// Two formats are supported: plain text with one sample per line (the format
// of the course's recorded clip) and PCM WAV files through go-audio/wav. WAV
// samples are normalised to [−1, 1] on read and quantised on write.
package sampleio
