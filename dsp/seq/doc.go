// Package seq represents finite discrete-time sequences on a contiguous
// integer index range and provides the elementary sequences and sequence
// operations of introductory signal processing.
//
// A [Sequence] pairs a starting index with its sample values, so x[n] for
// n = Start … Start+len(X)−1. Values outside that support are zero, which
// lets operations such as [Add] and [Multiply] combine sequences with
// different supports:
//
//	r := seq.Range{Start: -5, End: 5}
//	d, _ := seq.Impulse(0, r)
//	u, _ := seq.Step(2, r)
//	x := seq.Add(d, seq.Scale(u, -1))
//
// Random sequences take a math/rand/v2 Source so results are reproducible.
package seq
