package channel

import "math"

// AWGN is the additive white Gaussian noise channel with zero-mean noise:
// the output is the input plus a normal deviate of the configured variance.
// Likelihood evaluates the closed-form Gaussian density centered at the
// input value.
type AWGN[In, Out Number] struct {
	variance        float64
	halfInvVariance float64 // 0.5/variance
	norm            float64 // sqrt(2π·variance)
}

// NewAWGN creates a zero-mean Gaussian noise channel with the given variance.
func NewAWGN[In, Out Number](variance float64) (*AWGN[In, Out], error) {
	if err := validateVariance(variance); err != nil {
		return nil, err
	}

	return &AWGN[In, Out]{
		variance:        variance,
		halfInvVariance: 0.5 / variance,
		norm:            math.Sqrt(variance) * math.Sqrt(2*math.Pi),
	}, nil
}

// Likelihood returns the Gaussian density of output centered at input.
func (c *AWGN[In, Out]) Likelihood(output Out, input In) float64 {
	d := float64(output) - float64(input)

	return satExp(-c.halfInvVariance*d*d) / c.norm
}

// Variance returns the construction-time noise variance.
func (c *AWGN[In, Out]) Variance() float64 {
	return c.variance
}

// AGN is the additive Gaussian noise channel with configurable noise mean:
// the output is the input plus a normal deviate with the given mean and
// variance. Likelihood evaluates the Gaussian density of (output - mean)
// centered at the input value.
type AGN[In, Out Number] struct {
	mean               float64
	variance           float64
	negHalfInvVariance float64 // -1/(2·variance)
	invNorm            float64 // 1/sqrt(2π·variance)
}

// NewAGN creates a Gaussian noise channel with the given noise mean and
// variance.
func NewAGN[In, Out Number](mean, variance float64) (*AGN[In, Out], error) {
	if err := validateMean(mean); err != nil {
		return nil, err
	}

	if err := validateVariance(variance); err != nil {
		return nil, err
	}

	return &AGN[In, Out]{
		mean:               mean,
		variance:           variance,
		negHalfInvVariance: -1 / (2 * variance),
		invNorm:            1 / math.Sqrt(2*math.Pi*variance),
	}, nil
}

// Likelihood returns the Gaussian density of (output - mean) centered at
// input.
func (c *AGN[In, Out]) Likelihood(output Out, input In) float64 {
	d := (float64(output) - c.mean) - float64(input)

	return satExp(c.negHalfInvVariance*d*d) * c.invNorm
}

// Mean returns the construction-time noise mean.
func (c *AGN[In, Out]) Mean() float64 {
	return c.mean
}

// Variance returns the construction-time noise variance.
func (c *AGN[In, Out]) Variance() float64 {
	return c.variance
}
