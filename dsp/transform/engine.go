// Package transform wraps the external FFT backend behind the small surface
// the estimator needs: an in-place forward transform of a fixed size plus
// magnitude conversion. The package adds no state beyond preallocated scratch,
// so a transform call is a deterministic, allocation-free pure computation.
package transform

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Engine performs forward transforms of one fixed size on caller-owned
// real/imaginary buffers.
type Engine struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
	size int
}

// NewEngine creates a transform engine for the given size.
func NewEngine(size int) (*Engine, error) {
	if size <= 0 {
		return nil, fmt.Errorf("transform size must be > 0: %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transform init fft plan: %w", err)
	}

	return &Engine{
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
		size: size,
	}, nil
}

// Size returns the transform length.
func (e *Engine) Size() int {
	return e.size
}

// Forward replaces re and im with the unnormalized forward DFT of re + i*im.
// Both slices must have exactly Size() elements.
func (e *Engine) Forward(re, im []float64) error {
	if len(re) != e.size || len(im) != e.size {
		return fmt.Errorf("transform length mismatch: got %d/%d, want %d", len(re), len(im), e.size)
	}

	for i := range e.in {
		e.in[i] = complex(re[i], im[i])
	}

	if err := e.plan.Forward(e.out, e.in); err != nil {
		return fmt.Errorf("transform forward: %w", err)
	}

	for i, c := range e.out {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return nil
}

// MagnitudeFromComplex writes sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromComplex(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// ApplyWindow multiplies buf in place with window coefficients.
// Both slices must have the same length.
func ApplyWindow(buf, coeffs []float64) {
	vecmath.MulBlockInPlace(buf, coeffs)
}
