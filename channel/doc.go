// Package channel provides memoryless communication-channel models.
//
// A channel is a probabilistic mapping from a transmitted input symbol to an
// observed output symbol, characterized by its likelihood function
// P(output | input). The package exposes one capability interface,
// [Channel], and a closed set of concrete models implementing it:
//
//   - Noiseless: exact-match identity channel
//   - Shift: deterministic bias, no randomness
//   - AWGN: additive white Gaussian noise, zero mean
//   - AGN: additive Gaussian noise with configurable mean
//   - AGGN: additive generalized Gaussian noise (shape-parametric tails)
//   - Multi: per-input dispatch over sub-channels
//   - BinarySymmetric: two-symbol flip channel
//   - BinaryErasure: two-symbol erasure channel
//
// All models are immutable after construction: derived constants are computed
// once, Likelihood touches no mutable state, and instances may be shared
// across goroutines without locking.
//
// # Usage
//
// Construct a model once, then query it any number of times:
//
//	ch, _ := channel.NewAWGN[float64, float64](0.5)
//	p := ch.Likelihood(0.2, 0.0) // density of observing 0.2 given 0.0
//
// Downstream consumers (soft decoders, density evolution, capacity
// analysis) hold a Channel value and never need the concrete type; see the
// llr, dmc, density, and measure/info packages.
package channel
