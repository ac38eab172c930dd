package llr

import (
	"math"

	"github.com/cwbudde/algo-comm/channel"
)

// defaultSaturation bounds ratios when one conditional likelihood
// underflows to zero. exp(50) exceeds 5e21, far beyond the dynamic
// range any iterative decoder distinguishes.
const defaultSaturation = 50.0

// BPSK labels the two bit values with antipodal real symbols:
// bit 0 maps to +amplitude, bit 1 to -amplitude.
type BPSK struct {
	amplitude float64
}

// NewBPSK creates an antipodal labeling with the given amplitude.
func NewBPSK(amplitude float64) (BPSK, error) {
	if err := validateAmplitude(amplitude); err != nil {
		return BPSK{}, err
	}

	return BPSK{amplitude: amplitude}, nil
}

// Symbol returns the channel input symbol for a bit value.
func (m BPSK) Symbol(bit bool) float64 {
	if bit {
		return -m.amplitude
	}

	return m.amplitude
}

// Amplitude returns the symbol magnitude.
func (m BPSK) Amplitude() float64 {
	return m.amplitude
}

// Option configures a Computer.
type Option func(*config) error

type config struct {
	saturation float64
}

// WithSaturation bounds the magnitude of computed ratios. Ratios whose
// true magnitude exceeds the bound, including those where one
// likelihood underflows to zero, are clamped to ±saturation.
func WithSaturation(saturation float64) Option {
	return func(cfg *config) error {
		if err := validateSaturation(saturation); err != nil {
			return err
		}

		cfg.saturation = saturation

		return nil
	}
}

// Computer evaluates saturated log-likelihood ratios against an
// arbitrary binary-input channel model. It is immutable after
// construction and safe for concurrent use.
type Computer struct {
	ch         channel.Channel[float64, float64]
	symbol0    float64
	symbol1    float64
	saturation float64
}

// NewComputer creates a ratio computer for the given channel and
// labeling.
func NewComputer(ch channel.Channel[float64, float64], mod BPSK, opts ...Option) (*Computer, error) {
	if ch == nil {
		return nil, ErrNilChannel
	}

	if err := validateAmplitude(mod.amplitude); err != nil {
		return nil, err
	}

	cfg := config{saturation: defaultSaturation}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Computer{
		ch:         ch,
		symbol0:    mod.Symbol(false),
		symbol1:    mod.Symbol(true),
		saturation: cfg.saturation,
	}, nil
}

// Ratio returns the saturated log-likelihood ratio for one observation.
// If exactly one conditional likelihood is zero the result is the
// saturation bound with the matching sign; if both are zero the
// observation carries no information and the result is 0.
func (c *Computer) Ratio(output float64) float64 {
	l0 := c.ch.Likelihood(output, c.symbol0)
	l1 := c.ch.Likelihood(output, c.symbol1)

	switch {
	case l0 > 0 && l1 > 0:
		return clamp(math.Log(l0/l1), c.saturation)
	case l0 > 0:
		return c.saturation
	case l1 > 0:
		return -c.saturation
	default:
		return 0
	}
}

// Block fills dst with the ratios of the given observations. The two
// slices must have equal length.
func (c *Computer) Block(dst, outputs []float64) {
	if len(dst) != len(outputs) {
		panic("llr: dst and outputs lengths differ")
	}

	for i, y := range outputs {
		dst[i] = c.Ratio(y)
	}
}

// Saturation returns the configured magnitude bound.
func (c *Computer) Saturation() float64 {
	return c.saturation
}

func clamp(x, bound float64) float64 {
	if x > bound {
		return bound
	}

	if x < -bound {
		return -bound
	}

	return x
}
