// Package echo models a single delayed, attenuated reflection and its removal.
//
// The forward model adds one echo D samples late with gain α:
//
//	x[n] = y[n] + α·y[n−D]
//
// which is the FIR system with coefficient vector [1, 0, …, 0, α]
// (D−1 zeros). Removing the echo solves the same equation for y:
//
//	y[n] = x[n] − α·y[n−D]
//
// an IIR recursion that is stable only for |α| < 1. Both directions reject
// parameters outside that region with [ErrUnstable].
//
// [Add] and [Remove] evaluate the recurrences directly. [AddFilter] and
// [RemoveFilter] obtain the same results through the general difference
// equation routine in dsp/filter. [Adder] and [Remover] are the streaming
// equivalents.
package echo
