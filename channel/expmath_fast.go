//go:build fastmath

package channel

import (
	"github.com/meko-christian/algo-approx"
)

// mathExp computes e^x using fast approximation. The saturation cutoff in
// satExp runs first, so the approximation only ever sees exponents for which
// it is well-behaved.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
