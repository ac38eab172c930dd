package channel

import "math"

const defaultAGGNShape = 2.0

// AGGNOption mutates construction-time AGGN parameters.
type AGGNOption func(*aggnConfig) error

type aggnConfig struct {
	shape float64
}

func defaultAGGNConfig() aggnConfig {
	return aggnConfig{shape: defaultAGGNShape}
}

// WithShape sets the generalized-Gaussian shape parameter. Shape 2 (the
// default) is the normal distribution, shape 1 the Laplace distribution;
// values below 2 give heavier tails, above 2 lighter tails.
func WithShape(shape float64) AGGNOption {
	return func(cfg *aggnConfig) error {
		if err := validateShape(shape); err != nil {
			return err
		}

		cfg.shape = shape

		return nil
	}
}

// AGGN is the additive generalized Gaussian noise channel. The noise density
// is a·exp(-|(d-mean)/b|^shape) where d is the output-input deviation; the
// scale b and normalizer a are derived once at construction so Likelihood
// evaluates no gamma functions.
type AGGN[In, Out Number] struct {
	mean     float64
	variance float64
	shape    float64
	scale    float64 // b = sqrt(variance·Γ(1/shape)/Γ(3/shape))
	invScale float64
	norm     float64 // a = 1/(2·Γ(1+1/shape)·b)
}

// NewAGGN creates a generalized Gaussian noise channel with the given noise
// mean and variance. The shape defaults to 2, which reduces to NewAGN's
// Gaussian density.
func NewAGGN[In, Out Number](mean, variance float64, opts ...AGGNOption) (*AGGN[In, Out], error) {
	if err := validateMean(mean); err != nil {
		return nil, err
	}

	if err := validateVariance(variance); err != nil {
		return nil, err
	}

	cfg := defaultAGGNConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	b := gaussScale(variance, cfg.shape)
	a := gaussNorm(b, cfg.shape)

	return &AGGN[In, Out]{
		mean:     mean,
		variance: variance,
		shape:    cfg.shape,
		scale:    b,
		invScale: 1 / b,
		norm:     a,
	}, nil
}

// Likelihood returns the generalized Gaussian density of (output - mean)
// centered at input.
func (c *AGGN[In, Out]) Likelihood(output Out, input In) float64 {
	d := (float64(output) - float64(input)) - c.mean

	return c.norm * satExp(-math.Pow(math.Abs(d)*c.invScale, c.shape))
}

// Mean returns the construction-time noise mean.
func (c *AGGN[In, Out]) Mean() float64 {
	return c.mean
}

// Variance returns the construction-time noise variance.
func (c *AGGN[In, Out]) Variance() float64 {
	return c.variance
}

// Shape returns the construction-time shape parameter.
func (c *AGGN[In, Out]) Shape() float64 {
	return c.shape
}

// gaussScale returns the generalized-Gaussian scale
// b = sqrt(variance·Γ(1/shape)/Γ(3/shape)). The gamma ratio is evaluated in
// log space so it stays finite and double-precision accurate across the
// realistic shape range (0, 10], where the individual gamma values span many
// orders of magnitude.
func gaussScale(variance, shape float64) float64 {
	invShape := 1 / shape
	lg1, _ := math.Lgamma(invShape)
	lg3, _ := math.Lgamma(3 * invShape)

	return math.Sqrt(variance) * math.Exp(0.5*(lg1-lg3))
}

// gaussNorm returns the generalized-Gaussian normalizer
// a = 1/(2·Γ(1+1/shape)·b).
func gaussNorm(b, shape float64) float64 {
	lg, _ := math.Lgamma(1 + 1/shape)

	return 1 / (2 * math.Exp(lg) * b)
}
