// Package conv provides linear convolution and correlation of finite sequences.
//
// Two strategies are available:
//
//   - Direct: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add: FFT-based block convolution for long kernels
//
// [Convolve] picks between them from the kernel length. Correlation is
// expressed as convolution with a time-reversed operand:
//
//	corr, err := conv.Correlate(x, template)
//	idx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(idx, len(template))
package conv
