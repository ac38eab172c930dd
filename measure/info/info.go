// Package info computes information measures of channel models:
// entropies, closed-form capacities, and mutual information and
// capacity of discretized channels. All results are in bits.
package info

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// distTol bounds the acceptable deviation of a distribution sum from one.
const distTol = 1e-9

// Errors returned by information measures.
var (
	ErrInvalidProbability = errors.New("info: probability must be in [0, 1]")
	ErrInvalidSNR         = errors.New("info: snr must be non-negative and finite")
	ErrBadDistribution    = errors.New("info: distribution must be non-negative and sum to one")
	ErrNilChannel         = errors.New("info: channel must not be nil")
	ErrSizeMismatch       = errors.New("info: distribution length must match channel inputs")
	ErrBadTolerance       = errors.New("info: tolerance must be positive and finite")
	ErrBadIterations      = errors.New("info: max iterations must be positive")
	ErrNoConvergence      = errors.New("info: capacity iteration failed to converge")
)

// BinaryEntropy returns the binary entropy Hb(p) in bits, with the
// convention Hb(0) = Hb(1) = 0. Arguments outside [0, 1] yield NaN.
func BinaryEntropy(p float64) float64 {
	if p < 0 || p > 1 {
		return math.NaN()
	}

	if p == 0 || p == 1 {
		return 0
	}

	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// Entropy returns the Shannon entropy of a distribution in bits.
func Entropy(p []float64) (float64, error) {
	if err := validateDistribution(p); err != nil {
		return 0, err
	}

	return stat.Entropy(p) / math.Ln2, nil
}

// BSCCapacity returns the capacity of a binary symmetric channel with
// the given flip probability: 1 - Hb(pFlip).
func BSCCapacity(pFlip float64) (float64, error) {
	if err := validateProbability(pFlip); err != nil {
		return 0, err
	}

	return 1 - BinaryEntropy(pFlip), nil
}

// BECCapacity returns the capacity of a binary erasure channel with
// the given erasure probability: 1 - pErase.
func BECCapacity(pErase float64) (float64, error) {
	if err := validateProbability(pErase); err != nil {
		return 0, err
	}

	return 1 - pErase, nil
}

// AWGNCapacity returns the capacity of a real additive white Gaussian
// noise channel at the given signal-to-noise ratio (linear, not dB):
// 0.5·log2(1 + snr).
func AWGNCapacity(snr float64) (float64, error) {
	if snr < 0 || math.IsNaN(snr) || math.IsInf(snr, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSNR, snr)
	}

	return 0.5 * math.Log2(1+snr), nil
}

func validateProbability(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}

	return nil
}

func validateDistribution(p []float64) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrBadDistribution)
	}

	sum := 0.0

	for i, v := range p {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: entry %d = %v", ErrBadDistribution, i, v)
		}

		sum += v
	}

	if math.Abs(sum-1) > distTol {
		return fmt.Errorf("%w: sums to %v", ErrBadDistribution, sum)
	}

	return nil
}
