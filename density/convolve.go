package density

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// stepMatchTol is the relative tolerance for treating two grid steps
// as equal.
const stepMatchTol = 1e-12

// Convolve returns the convolution of two densities on matching-step
// grids: the effective noise density of two independent additive
// channels in cascade. The result starts at the sum of the input
// origins, keeps the shared step, and has len(a)+len(b)-1 points.
//
// The linear convolution runs as an FFT product scaled by the grid
// step; negative values from frequency-domain roundoff are clamped to
// zero.
func Convolve(a, b *Grid) (*Grid, error) {
	if math.Abs(a.step-b.step) > stepMatchTol*math.Max(a.step, b.step) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrStepMismatch, a.step, b.step)
	}

	la, lb := a.Len(), b.Len()
	outLen := la + lb - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("density: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, fftSize)
	for i, v := range a.p {
		fa[i] = complex(v, 0)
	}

	fb := make([]complex128, fftSize)
	for i, v := range b.p {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("density: forward FFT failed: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("density: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("density: inverse FFT failed: %w", err)
	}

	out := newGrid(a.origin+b.origin, a.step, outLen)
	for i := range out.p {
		v := real(fa[i]) * a.step
		if v < 0 {
			v = 0
		}

		out.p[i] = v
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
