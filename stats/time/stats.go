// Package time computes time-domain statistics of raw integer sample
// segments: the per-channel summary reported next to an averaged power
// spectrum.
package time

import "math"

// Stats holds aggregate statistics of the accumulated segments.
type Stats struct {
	Count     int
	Max       int16
	Min       int16
	Mean      float64
	Deviation float64 // population standard deviation
}

// Tracker accumulates statistics across sample segments with a deferred
// reset: Reset only marks the tracker, and the first Update afterwards
// starts a fresh data set. This matches the reuse contract of the PSD
// estimator, so both can be re-armed together between measurement runs.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	armed bool // reset requested, re-seed on next Update

	count    int
	max, min int16

	// Welford accumulators, float64 regardless of the sample type.
	mean float64
	m2   float64
}

// NewTracker returns a tracker ready for its first data set.
func NewTracker() *Tracker {
	return &Tracker{armed: true}
}

// Reset marks the tracker; accumulated results stay readable until the
// next Update.
func (t *Tracker) Reset() {
	t.armed = true
}

// Update folds a segment of samples into the running statistics.
func (t *Tracker) Update(samples []int16) {
	if len(samples) == 0 {
		return
	}

	if t.armed {
		t.armed = false
		t.count = 0
		t.max = samples[0]
		t.min = samples[0]
		t.mean = 0
		t.m2 = 0
	}

	for _, s := range samples {
		if s > t.max {
			t.max = s
		}
		if s < t.min {
			t.min = s
		}

		t.count++
		x := float64(s)
		delta := x - t.mean
		t.mean += delta / float64(t.count)
		t.m2 += delta * (x - t.mean)
	}
}

// Result returns the statistics of all samples since the last re-seed.
// A tracker that never saw data returns the zero Stats.
func (t *Tracker) Result() Stats {
	if t.count == 0 {
		return Stats{}
	}

	return Stats{
		Count:     t.count,
		Max:       t.max,
		Min:       t.min,
		Mean:      t.mean,
		Deviation: math.Sqrt(t.m2 / float64(t.count)),
	}
}

// Calculate is the one-shot convenience for a single segment.
func Calculate(samples []int16) Stats {
	t := NewTracker()
	t.Update(samples)
	return t.Result()
}
