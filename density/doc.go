// Package density works with conditional densities sampled on uniform
// grids.
//
// A [Grid] holds likelihood values of a continuous-output channel model
// on evenly spaced output points. It supports normalization, moment and
// entropy computation, and FFT-based convolution, which yields the
// effective noise density of two additive channels in cascade.
//
// Unlike channel models, a Grid is a mutable working buffer: Normalize
// modifies it in place, and concurrent mutation is not synchronized.
package density
