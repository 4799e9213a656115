package channel

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/buffer"
	"github.com/cwbudde/algo-psd/dsp/core"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/measure/psd"
	timestats "github.com/cwbudde/algo-psd/stats/time"
)

// Config holds the per-channel measurement settings.
type Config struct {
	core.ProcessorConfig
	Window window.Type
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Window:          window.TypeHamming,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		core.WithSampleRate(sampleRate)(&cfg.ProcessorConfig)
	}
}

// WithSegmentSize sets the number of samples per processed segment.
func WithSegmentSize(segmentSize int) Option {
	return func(cfg *Config) {
		core.WithSegmentSize(segmentSize)(&cfg.ProcessorConfig)
	}
}

// WithWindow selects the window applied to every segment.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// Report is the finalized readout of a recorder.
type Report struct {
	Name     string
	Segments int       // segments folded into Bins
	Bins     []float64 // owned copy of the averaged one-sided estimate
	Core     psd.CoreBin
	Stats    timestats.Stats
}

// Recorder accumulates PSD and time statistics for one signal channel.
//
// Like the underlying estimator, a Recorder must be driven from a single
// goroutine.
type Recorder struct {
	name      string
	cfg       Config
	estimator *psd.Estimator
	tracker   *timestats.Tracker
	segments  *buffer.Segmented
}

// NewRecorder creates a configured recorder for the named channel.
func NewRecorder(name string, opts ...Option) (*Recorder, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	estimator := psd.New(psd.WithWindow(cfg.Window))
	if err := estimator.Setup(cfg.SegmentSize, cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("channel %s: %w", name, err)
	}

	segments, err := buffer.NewSegmented(cfg.SegmentSize)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", name, err)
	}

	return &Recorder{
		name:      name,
		cfg:       cfg,
		estimator: estimator,
		tracker:   timestats.NewTracker(),
		segments:  segments,
	}, nil
}

// Name returns the channel name.
func (r *Recorder) Name() string {
	return r.name
}

// Config returns the settings the recorder was built with.
func (r *Recorder) Config() Config {
	return r.cfg
}

// ProcessSegment folds one full segment into both the spectral estimate and
// the time statistics. The segment length must equal the configured size.
func (r *Recorder) ProcessSegment(samples []int16) error {
	if err := r.estimator.ComputeSegment(samples); err != nil {
		return fmt.Errorf("channel %s: %w", r.name, err)
	}
	r.tracker.Update(samples)
	return nil
}

// Push assembles arbitrarily sized sample batches into full segments and
// processes every segment that completes. It returns the number of segments
// processed from this batch.
func (r *Recorder) Push(samples []int16) (int, error) {
	processed := 0
	for _, segment := range r.segments.Push(samples) {
		if err := r.ProcessSegment(segment); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// Report finalizes the current run and re-arms the recorder for the next one.
// The returned bins are an owned copy, safe to keep past further segments.
func (r *Recorder) Report() Report {
	segments := r.estimator.SegmentCount()
	bins, core := r.estimator.ResultCore()

	report := Report{
		Name:     r.name,
		Segments: segments,
		Bins:     append([]float64(nil), bins...),
		Core:     core,
		Stats:    r.tracker.Result(),
	}

	r.tracker.Reset()
	return report
}

// Reset drops buffered partial samples and re-arms the statistics tracker.
// The spectral accumulator follows its own deferred reset on the next segment.
func (r *Recorder) Reset() {
	r.segments.Reset()
	r.tracker.Reset()
}
