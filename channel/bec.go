package channel

// ErasureSymbol is the ternary output alphabet of the binary erasure
// channel: a received bit value or the erasure flag.
type ErasureSymbol int8

const (
	// SymbolZero is bit 0 received intact.
	SymbolZero ErasureSymbol = iota
	// SymbolOne is bit 1 received intact.
	SymbolOne
	// SymbolErased marks a bit replaced by the erasure flag.
	SymbolErased
)

// SymbolFor returns the intact-reception symbol for a bit value.
func SymbolFor(bit bool) ErasureSymbol {
	if bit {
		return SymbolOne
	}

	return SymbolZero
}

// BinaryErasure is the binary erasure channel: a transmitted bit is replaced
// by the erasure flag with a fixed probability and otherwise passed through
// unchanged. Unlike BinarySymmetric it never flips a bit, and its output
// alphabet differs from its input alphabet.
type BinaryErasure struct {
	pErase float64
}

// NewBinaryErasure creates a binary erasure channel with the given erasure
// probability.
func NewBinaryErasure(pErase float64) (*BinaryErasure, error) {
	if err := validateProbability("erasure probability", pErase); err != nil {
		return nil, err
	}

	return &BinaryErasure{pErase: pErase}, nil
}

// Likelihood returns pErase for the erasure symbol, 1-pErase for the symbol
// matching the transmitted bit, and 0 for the flipped bit.
func (c *BinaryErasure) Likelihood(output ErasureSymbol, input bool) float64 {
	switch output {
	case SymbolErased:
		return c.pErase
	case SymbolFor(input):
		return 1 - c.pErase
	default:
		return 0
	}
}

// ErasureProbability returns the construction-time erasure probability.
func (c *BinaryErasure) ErasureProbability() float64 {
	return c.pErase
}
