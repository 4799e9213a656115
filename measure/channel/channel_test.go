package channel

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/internal/testutil"
)

func mustRecorder(t *testing.T, name string, opts ...Option) *Recorder {
	t.Helper()
	r, err := NewRecorder(name, opts...)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	return r
}

func TestNewRecorderDefaults(t *testing.T) {
	r := mustRecorder(t, "ch0")

	cfg := r.Config()
	if cfg.SegmentSize != 256 || cfg.SampleRate != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Window != window.TypeHamming {
		t.Fatalf("default window = %v, want Hamming", cfg.Window)
	}
	if r.Name() != "ch0" {
		t.Fatalf("Name = %q", r.Name())
	}
}

func TestNewRecorderOptions(t *testing.T) {
	r := mustRecorder(t, "accel-x",
		WithSampleRate(8000),
		WithSegmentSize(512),
		WithWindow(window.TypeHann),
	)

	cfg := r.Config()
	if cfg.SampleRate != 8000 || cfg.SegmentSize != 512 || cfg.Window != window.TypeHann {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestNewRecorderInvalidSegmentSize(t *testing.T) {
	_, err := NewRecorder("broken", WithSegmentSize(2048))
	if err == nil {
		t.Fatal("expected error for oversized segment")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error should name the channel: %v", err)
	}
}

func TestProcessSegmentAndReport(t *testing.T) {
	r := mustRecorder(t, "ch1", WithSampleRate(128), WithSegmentSize(64))

	segment := testutil.SineSegment(5, 900, 64)
	if err := r.ProcessSegment(segment); err != nil {
		t.Fatalf("ProcessSegment: %v", err)
	}

	report := r.Report()
	if report.Name != "ch1" {
		t.Fatalf("Name = %q", report.Name)
	}
	if report.Segments != 1 {
		t.Fatalf("Segments = %d, want 1", report.Segments)
	}
	if len(report.Bins) != 33 {
		t.Fatalf("len(Bins) = %d, want 33", len(report.Bins))
	}
	if report.Core.Index != 5 {
		t.Fatalf("Core.Index = %d, want 5", report.Core.Index)
	}
	testutil.RequireNear(t, report.Core.Frequency, 10, 1e-12)

	if report.Stats.Count != 64 {
		t.Fatalf("Stats.Count = %d, want 64", report.Stats.Count)
	}
	if report.Stats.Max != 900 || report.Stats.Min != -900 {
		t.Fatalf("Stats extrema = %d/%d, want 900/-900", report.Stats.Max, report.Stats.Min)
	}
}

func TestProcessSegmentLengthMismatch(t *testing.T) {
	r := mustRecorder(t, "ch2", WithSegmentSize(64))

	err := r.ProcessSegment(make([]int16, 32))
	if err == nil {
		t.Fatal("expected error for short segment")
	}
	if !strings.Contains(err.Error(), "ch2") {
		t.Fatalf("error should name the channel: %v", err)
	}
}

func TestReportReturnsOwnedCopy(t *testing.T) {
	r := mustRecorder(t, "ch3", WithSampleRate(128), WithSegmentSize(64))

	if err := r.ProcessSegment(testutil.SineSegment(5, 900, 64)); err != nil {
		t.Fatal(err)
	}
	first := r.Report()
	snapshot := append([]float64(nil), first.Bins...)

	// Further processing must not reach the already returned report.
	if err := r.ProcessSegment(testutil.SineSegment(2, 300, 64)); err != nil {
		t.Fatal(err)
	}
	_ = r.Report()

	for i := range snapshot {
		if first.Bins[i] != snapshot[i] {
			t.Fatalf("report bins mutated at %d", i)
		}
	}
}

func TestReportReArmsStatistics(t *testing.T) {
	r := mustRecorder(t, "ch4", WithSampleRate(128), WithSegmentSize(64))

	if err := r.ProcessSegment(testutil.ConstantSegment(100, 64)); err != nil {
		t.Fatal(err)
	}
	_ = r.Report()

	if err := r.ProcessSegment(testutil.ConstantSegment(-7, 64)); err != nil {
		t.Fatal(err)
	}
	report := r.Report()

	if report.Stats.Count != 64 {
		t.Fatalf("Stats.Count = %d, want 64 from the second run only", report.Stats.Count)
	}
	if report.Stats.Max != -7 || report.Stats.Min != -7 {
		t.Fatalf("stale extrema leaked into the new run: %+v", report.Stats)
	}
}

func TestPushAssemblesSegments(t *testing.T) {
	r := mustRecorder(t, "ch5", WithSampleRate(128), WithSegmentSize(64))

	stream := testutil.NoiseSegment(3, 500, 160) // 2.5 segments
	total := 0
	for start := 0; start < len(stream); start += 40 {
		n, err := r.Push(stream[start : start+40])
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		total += n
	}

	if total != 2 {
		t.Fatalf("processed %d segments, want 2", total)
	}

	report := r.Report()
	if report.Segments != 2 {
		t.Fatalf("Segments = %d, want 2", report.Segments)
	}
	if report.Stats.Count != 128 {
		t.Fatalf("Stats.Count = %d, want 128", report.Stats.Count)
	}
}

func TestResetDropsPartialSamples(t *testing.T) {
	r := mustRecorder(t, "ch6", WithSegmentSize(64))

	if _, err := r.Push(make([]int16, 40)); err != nil {
		t.Fatal(err)
	}
	r.Reset()

	// 40 more samples would have completed a segment without the reset.
	n, err := r.Push(make([]int16, 40))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("processed %d segments after reset, want 0", n)
	}
}
