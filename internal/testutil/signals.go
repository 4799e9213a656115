package testutil

import (
	"math"
	"math/rand"
)

// SineSegment generates a deterministic integer sine segment.
// cycles is the number of full periods across the segment, so the signal
// lands on bin round(cycles) of a same-length transform.
func SineSegment(cycles, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = int16(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

// ConstantSegment generates an all-equal segment (a pure DC signal).
func ConstantSegment(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoiseSegment generates integer white noise with a fixed seed.
func NoiseSegment(seed int64, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16(math.Round((rng.Float64()*2 - 1) * amplitude))
	}
	return out
}
