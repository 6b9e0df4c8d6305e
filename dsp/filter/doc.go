// Package filter evaluates linear constant-coefficient difference equations
//
//	a[0]y[n] + a[1]y[n-1] + … + a[N]y[n-N] = b[0]x[n] + b[1]x[n-1] + … + b[M]x[n-M]
//
// with zero initial conditions, the role played by a general "filter(b, a, x)"
// routine in numerical environments.
//
// A [Filter] runs Direct Form I over the non-zero taps only. Sparse
// equations such as a single delayed echo tap therefore cost O(taps) per
// sample rather than O(order).
package filter
