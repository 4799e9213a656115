package psd

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/transform"
	"github.com/cwbudde/algo-psd/dsp/window"
)

// SamplesCountMax is the fixed capacity of the bin accumulator and the
// largest segment size an estimator accepts.
const SamplesCountMax = 1024

// state of the accumulator between segments.
type state int

const (
	// stateIdle: the accumulator holds either a finalized averaged result
	// or stale content pending the next segment.
	stateIdle state = iota
	// stateAccumulating: the accumulator holds an unaveraged running sum.
	stateAccumulating
)

// CoreBin describes the dominant frequency bin of a finalized estimate.
type CoreBin struct {
	Index     int
	Frequency float64 // Hz
	Amplitude float64 // averaged, window-corrected power
}

// Estimator accumulates an averaged power spectral density estimate across
// successive sample segments.
//
// All operations execute to completion synchronously and must be invoked
// from a single goroutine; there is no internal locking.
type Estimator struct {
	windowType window.Type
	correction float64 // squared amplitude correction, applied on finalize

	sampleCount     int
	sampleFrequency float64

	segmentCount int
	state        state

	engine *transform.Engine
	coeffs []float64

	re   [SamplesCountMax]float64
	im   [SamplesCountMax]float64
	mag  [SamplesCountMax]float64
	bins [SamplesCountMax]float64
}

// Option configures an Estimator at construction.
type Option func(*Estimator)

// WithWindow selects the window function applied to every segment.
// The default is the Hamming window.
func WithWindow(t window.Type) Option {
	return func(e *Estimator) {
		e.windowType = t
	}
}

// New creates an unconfigured estimator; Setup must be called before the
// first segment.
func New(opts ...Option) *Estimator {
	e := &Estimator{windowType: window.TypeHamming}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Setup stores the segment parameters and resets the segment counter.
//
// The bin accumulator is NOT cleared here: it is cleared lazily by the next
// ComputeSegment, so a Result call between Setup and the first segment still
// exposes bins from the previous configuration.
func (e *Estimator) Setup(sampleCount int, sampleFrequency float64) error {
	if sampleCount < 1 || sampleCount > SamplesCountMax {
		return fmt.Errorf("psd sample count must be in [1, %d]: %d", SamplesCountMax, sampleCount)
	}
	if sampleFrequency <= 0 {
		return fmt.Errorf("psd sample frequency must be > 0: %g", sampleFrequency)
	}

	if e.engine == nil || e.engine.Size() != sampleCount {
		coeffs, err := window.Generate(e.windowType, sampleCount)
		if err != nil {
			return fmt.Errorf("psd window: %w", err)
		}

		engine, err := transform.NewEngine(sampleCount)
		if err != nil {
			return fmt.Errorf("psd transform: %w", err)
		}

		e.coeffs = coeffs
		e.engine = engine
	}

	corr := window.Info(e.windowType).AmplitudeCorrection

	e.sampleCount = sampleCount
	e.sampleFrequency = sampleFrequency
	e.correction = corr * corr
	e.segmentCount = 0
	e.state = stateIdle

	return nil
}

// ComputeSegment folds one segment of exactly SampleCount raw samples into
// the running estimate.
func (e *Estimator) ComputeSegment(samples []int16) error {
	if e.sampleCount == 0 {
		return errNotConfigured
	}
	if len(samples) != e.sampleCount {
		return fmt.Errorf("psd segment length mismatch: got %d, want %d", len(samples), e.sampleCount)
	}

	if e.state == stateIdle {
		// Deferred reset: a finalized or stale result is dropped only
		// when new data actually arrives, never blended with it.
		e.Clear()
	}

	n := e.sampleCount
	re := e.re[:n]
	im := e.im[:n]

	mean := segmentMean(samples)
	for i, s := range samples {
		re[i] = float64(s) - mean
		im[i] = 0
	}

	transform.ApplyWindow(re, e.coeffs)
	if err := e.engine.Forward(re, im); err != nil {
		return fmt.Errorf("psd segment: %w", err)
	}

	mag := e.mag[:n]
	transform.MagnitudeFromComplex(mag, re, im)

	norm := e.sampleFrequency * float64(n)
	for i, m := range mag {
		power := m * m / norm
		if i > 0 {
			// One-sided spectrum: fold the mirrored negative half
			// into every non-DC bin.
			power *= 2
		}
		e.bins[i] += power
	}

	e.segmentCount++
	e.state = stateAccumulating
	return nil
}

// Result finalizes and returns the averaged, window-corrected estimate.
//
// When segments are pending, every accumulated bin is divided by the segment
// count and scaled by the squared window correction in place; the counter
// then resets so repeated reads are idempotent. The returned view covers the
// SampleCount/2+1 meaningful bins and stays valid and unchanged until the
// next ComputeSegment or Setup call. Result on an unconfigured estimator
// returns nil.
func (e *Estimator) Result() []float64 {
	if e.sampleCount == 0 {
		return nil
	}

	if e.state == stateAccumulating {
		scale := e.correction / float64(e.segmentCount)
		for i := range e.bins[:e.sampleCount] {
			e.bins[i] *= scale
		}

		e.segmentCount = 0
		e.state = stateIdle
	}

	return e.bins[:e.sampleCount/2+1]
}

// ResultCore finalizes like Result and additionally reports the dominant
// ("core") bin of the estimate.
func (e *Estimator) ResultCore() ([]float64, CoreBin) {
	bins := e.Result()
	if len(bins) == 0 {
		return nil, CoreBin{}
	}

	core := CoreBin{Amplitude: bins[0]}
	for i, v := range bins {
		if v > core.Amplitude {
			core.Index = i
			core.Amplitude = v
		}
	}
	core.Frequency = e.BinFrequency(core.Index)

	return bins, core
}

// Clear zeroes the active accumulator range. The segment counter is not
// touched; ComputeSegment uses Clear for its deferred reset, and callers may
// use it to force-drop accumulated power.
func (e *Estimator) Clear() {
	for i := range e.bins[:e.sampleCount] {
		e.bins[i] = 0
	}
}

// SampleCount returns the configured segment length, 0 before Setup.
func (e *Estimator) SampleCount() int {
	return e.sampleCount
}

// SampleFrequency returns the configured sampling rate in Hz.
func (e *Estimator) SampleFrequency() float64 {
	return e.sampleFrequency
}

// SegmentCount returns the number of segments accumulated since the last
// finalized read.
func (e *Estimator) SegmentCount() int {
	return e.segmentCount
}

// BinCount returns the number of meaningful result bins, SampleCount/2+1.
func (e *Estimator) BinCount() int {
	if e.sampleCount == 0 {
		return 0
	}
	return e.sampleCount/2 + 1
}

// BinFrequency returns the center frequency of bin i in Hz.
func (e *Estimator) BinFrequency(i int) float64 {
	if e.sampleCount == 0 {
		return 0
	}
	return float64(i) * e.sampleFrequency / float64(e.sampleCount)
}

// Resolution returns the frequency spacing between bins in Hz.
func (e *Estimator) Resolution() float64 {
	if e.sampleCount == 0 {
		return 0
	}
	return e.sampleFrequency / float64(e.sampleCount)
}

// segmentMean computes the arithmetic mean in float64 to avoid integer
// truncation before DC removal.
func segmentMean(samples []int16) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += float64(s)
	}
	return sum / float64(len(samples))
}
