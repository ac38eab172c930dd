package channel

// Noiseless is the identity channel: the output equals the input converted to
// the output symbol type with certainty. It serves as a baseline when wiring
// likelihood consumers.
type Noiseless[In, Out Number] struct{}

// NewNoiseless creates a noiseless channel.
func NewNoiseless[In, Out Number]() *Noiseless[In, Out] {
	return &Noiseless[In, Out]{}
}

// Likelihood returns 1 if output equals the input converted to the output
// type, 0 otherwise.
func (*Noiseless[In, Out]) Likelihood(output Out, input In) float64 {
	if output == Out(input) {
		return 1
	}

	return 0
}

// Shift is a deterministic bias channel: the output is exactly the input
// minus a fixed offset, with no randomness.
type Shift[In, Out Number] struct {
	offset float64
}

// NewShift creates a shift channel with the given offset.
func NewShift[In, Out Number](offset float64) (*Shift[In, Out], error) {
	if err := validateOffset(offset); err != nil {
		return nil, err
	}

	return &Shift[In, Out]{offset: offset}, nil
}

// Likelihood returns 1 if output equals input minus the offset, 0 otherwise.
// The comparison is exact in float64.
func (c *Shift[In, Out]) Likelihood(output Out, input In) float64 {
	if float64(output) == float64(input)-c.offset {
		return 1
	}

	return 0
}

// Offset returns the construction-time offset.
func (c *Shift[In, Out]) Offset() float64 {
	return c.offset
}
