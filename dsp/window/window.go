// Package window provides the tapering functions applied before the forward
// transform and the per-window correction factors used to compensate their
// amplitude attenuation in averaged power spectra.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name         string
	CoherentGain float64 // sum(w)/N, the DC response of the window
	PowerGain    float64 // sum(w^2)/N, incoherent power gain
	// AmplitudeCorrection compensates the window's attenuation when
	// averaging periodograms, approximately 1/sqrt(PowerGain). Values are
	// tabulated asymptotic constants.
	AmplitudeCorrection float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:    {Name: "rectangular", CoherentGain: 1.0, PowerGain: 1.0, AmplitudeCorrection: 1.0},
	TypeHann:           {Name: "hann", CoherentGain: 0.5, PowerGain: 0.375, AmplitudeCorrection: 1.633},
	TypeHamming:        {Name: "hamming", CoherentGain: 0.54, PowerGain: 0.3974, AmplitudeCorrection: 1.59},
	TypeBlackman:       {Name: "blackman", CoherentGain: 0.42, PowerGain: 0.3046, AmplitudeCorrection: 1.812},
	TypeBlackmanHarris: {Name: "blackman-harris", CoherentGain: 0.35875, PowerGain: 0.25797, AmplitudeCorrection: 1.969},
}

// Cosine-sum coefficients, evaluated as sum over k of c[k]*cos(k*2*pi*x).
var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

// Info returns static metadata for a window type.
// Unknown types yield a zero Metadata.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// Generate returns symmetric window coefficients of the given length.
func Generate(t Type, length int) ([]float64, error) {
	if length <= 0 {
		return nil, validateLength(length)
	}
	coeffs, err := cosineCoeffs(t)
	if err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if coeffs == nil {
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}

	for i := range out {
		out[i] = cosineSum(samplePosition(i, length), coeffs)
	}
	return out, nil
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64) error {
	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)
	return nil
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients
// in place. This is the allocation-free path for repeated segments.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

func cosineCoeffs(t Type) ([]float64, error) {
	switch t {
	case TypeRectangular:
		return nil, nil
	case TypeHann:
		return hannCoeffs, nil
	case TypeHamming:
		return hammingCoeffs, nil
	case TypeBlackman:
		return blackmanCoeffs, nil
	case TypeBlackmanHarris:
		return blackmanHarrisCoeffs, nil
	default:
		return nil, errUnknownType
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(n) / float64(size-1)
}
