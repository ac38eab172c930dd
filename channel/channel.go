package channel

import "math"

// Number constrains symbol types to the built-in integer and floating-point
// kinds. Symbol arithmetic inside the models is carried out in float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Channel models a memoryless channel over an input and an output symbol
// type, both fixed at instantiation.
//
// Likelihood returns the probability (discrete-output models) or probability
// density (continuous-output models) of observing output given that input was
// transmitted. Implementations are deterministic, side-effect-free, and
// return a non-negative value; for a fixed input, discrete masses sum to 1
// over the output alphabet and continuous densities integrate to 1 over the
// output domain.
type Channel[In, Out any] interface {
	Likelihood(output Out, input In) float64
}

// expUnderflow is the exponent below which math.Exp is treated as zero.
// math.Exp itself underflows near -745.13; the fastmath approximation does
// not, so the cutoff is applied before either implementation runs.
const expUnderflow = -745.0

// satExp returns exp(x) for the non-positive exponents produced by the noise
// models, saturating to exactly 0 on underflow or a NaN exponent instead of
// letting non-finite values propagate into the density.
func satExp(x float64) float64 {
	if x < expUnderflow || math.IsNaN(x) {
		return 0
	}

	return mathExp(x)
}
