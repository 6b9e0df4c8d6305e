// Package figure renders sequences and sampled signals with gonum/plot.
//
// Discrete sequences are drawn as stem plots (a vertical line from zero to
// each sample topped by a circle) and sampled continuous-time signals as
// lines. Figures are written in the format named by the file extension:
// png, jpg, svg, pdf, eps, or tiff.
package figure
