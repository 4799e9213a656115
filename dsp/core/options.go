package core

// ProcessorConfig defines common measurement settings shared by the
// higher-level measure packages.
type ProcessorConfig struct {
	SampleRate  float64
	SegmentSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for periodic sampling use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  1000,
		SegmentSize: 256,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSegmentSize sets the number of samples per processed segment.
func WithSegmentSize(segmentSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if segmentSize > 0 {
			cfg.SegmentSize = segmentSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
