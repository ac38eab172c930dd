package testutil

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Integrate approximates the integral of f over [lo, hi] with the composite
// trapezoidal rule on n evenly spaced points. Accurate enough to verify
// density normalization against loose tolerances.
func Integrate(f func(float64) float64, lo, hi float64, n int) float64 {
	if n < 2 {
		return 0
	}
	x := Linspace(lo, hi, n)
	step := (hi - lo) / float64(n-1)
	sum := 0.5 * (f(x[0]) + f(x[n-1]))
	for _, xi := range x[1 : n-1] {
		sum += f(xi)
	}
	return sum * step
}
