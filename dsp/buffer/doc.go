// Package buffer assembles raw integer sample streams into the fixed-size
// segments the PSD estimator consumes. The two-segment ping-pong layout
// mirrors acquisition loops that process one half while the other fills,
// without allocating per segment.
package buffer
