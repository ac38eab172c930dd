package llr

import (
	"github.com/cwbudde/algo-vecmath"
)

// AWGNComputer is the closed form for BPSK over additive white
// Gaussian noise: the Gaussian exponents cancel to a ratio that is
// linear in the observation,
//
//	LLR(y) = 2·amplitude·y / variance.
//
// Unlike Computer it never saturates; the linear form stays finite for
// every finite observation.
type AWGNComputer struct {
	slope     float64
	variance  float64
	amplitude float64
}

// NewAWGNComputer creates the closed-form computer for the given
// labeling and noise variance.
func NewAWGNComputer(mod BPSK, variance float64) (*AWGNComputer, error) {
	if err := validateAmplitude(mod.amplitude); err != nil {
		return nil, err
	}

	if err := validateVariance(variance); err != nil {
		return nil, err
	}

	return &AWGNComputer{
		slope:     2 * mod.amplitude / variance,
		variance:  variance,
		amplitude: mod.amplitude,
	}, nil
}

// Ratio returns the log-likelihood ratio for one observation.
func (c *AWGNComputer) Ratio(output float64) float64 {
	return c.slope * output
}

// Block fills dst with the ratios of the given observations using a
// single vectorized scale. The two slices must have equal length.
func (c *AWGNComputer) Block(dst, outputs []float64) {
	vecmath.ScaleBlock(dst, outputs, c.slope)
}

// Variance returns the configured noise variance.
func (c *AWGNComputer) Variance() float64 {
	return c.variance
}

// Amplitude returns the configured symbol magnitude.
func (c *AWGNComputer) Amplitude() float64 {
	return c.amplitude
}
