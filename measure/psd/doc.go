// Package psd estimates the power spectral density of a discretely sampled
// signal using Welch's method: periodograms of successive fixed-size sample
// segments are accumulated and averaged on demand, reducing the variance of
// the estimate as more segments arrive.
//
// The estimator is built for periodic sampling loops on bounded memory: all
// working buffers are sized to [SamplesCountMax] once, and no operation
// allocates after Setup. One estimator serves one signal channel; multiple
// channels need one estimator each.
package psd
