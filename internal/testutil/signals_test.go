package testutil

import "testing"

func TestSineSegment(t *testing.T) {
	s := SineSegment(1, 1000, 8)
	if len(s) != 8 {
		t.Fatalf("len = %d, want 8", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %d, want 0", s[0])
	}
	if s[2] != 1000 {
		t.Fatalf("s[2] = %d, want 1000", s[2])
	}
	if s[6] != -1000 {
		t.Fatalf("s[6] = %d, want -1000", s[6])
	}

	// Deterministic.
	again := SineSegment(1, 1000, 8)
	for i := range s {
		if s[i] != again[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestConstantSegment(t *testing.T) {
	s := ConstantSegment(-42, 16)
	for i, v := range s {
		if v != -42 {
			t.Fatalf("s[%d] = %d, want -42", i, v)
		}
	}
}

func TestNoiseSegmentReproducible(t *testing.T) {
	a := NoiseSegment(7, 500, 64)
	b := NoiseSegment(7, 500, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] > 500 || a[i] < -500 {
			t.Fatalf("a[%d] = %d out of range", i, a[i])
		}
	}
}
