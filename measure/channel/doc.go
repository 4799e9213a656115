// Package channel records per-channel measurements of a sampled signal: an
// averaged power spectral density estimate together with time-domain
// statistics, collected segment by segment and read out as a single report.
//
// A Recorder owns one estimator and one statistics tracker and serves one
// signal channel; multi-channel setups use one Recorder per channel.
package channel
