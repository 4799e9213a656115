package core

import "testing"

func TestDefaultProcessorConfig(t *testing.T) {
	cfg := DefaultProcessorConfig()
	if cfg.SampleRate <= 0 {
		t.Fatalf("default sample rate must be positive: %f", cfg.SampleRate)
	}
	if cfg.SegmentSize <= 0 {
		t.Fatalf("default segment size must be positive: %d", cfg.SegmentSize)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(400), WithSegmentSize(512))
	if cfg.SampleRate != 400 {
		t.Fatalf("SampleRate = %f, want 400", cfg.SampleRate)
	}
	if cfg.SegmentSize != 512 {
		t.Fatalf("SegmentSize = %d, want 512", cfg.SegmentSize)
	}
}

func TestApplyProcessorOptionsRejectsInvalid(t *testing.T) {
	def := DefaultProcessorConfig()

	cfg := ApplyProcessorOptions(WithSampleRate(-1), WithSegmentSize(0), nil)
	if cfg != def {
		t.Fatalf("invalid options must leave defaults untouched: %+v", cfg)
	}
}
