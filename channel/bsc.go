package channel

// BinarySymmetric is the canonical two-symbol channel of coding theory: a
// transmitted bit is flipped with a fixed probability and otherwise passed
// through unchanged. It is fixed to boolean symbols rather than generic over
// the symbol types.
type BinarySymmetric struct {
	pFlip float64
}

// NewBinarySymmetric creates a binary symmetric channel with the given flip
// probability.
func NewBinarySymmetric(pFlip float64) (*BinarySymmetric, error) {
	if err := validateProbability("flip probability", pFlip); err != nil {
		return nil, err
	}

	return &BinarySymmetric{pFlip: pFlip}, nil
}

// Likelihood returns 1-pFlip when output matches input and pFlip otherwise.
func (c *BinarySymmetric) Likelihood(output, input bool) float64 {
	if output == input {
		return 1 - c.pFlip
	}

	return c.pFlip
}

// FlipProbability returns the construction-time flip probability.
func (c *BinarySymmetric) FlipProbability() float64 {
	return c.pFlip
}
