package buffer

import "fmt"

// Segmented assembles an incoming sample stream into fixed-size segments
// using a two-segment ping-pong layout: one half of the backing buffer fills
// while the previously completed half is being processed.
type Segmented struct {
	data    []int16 // backing store, 2 * segment samples
	segment int
	write   int
}

// NewSegmented creates a segment assembler for the given segment size.
func NewSegmented(segmentSize int) (*Segmented, error) {
	if segmentSize <= 0 {
		return nil, fmt.Errorf("segment size must be > 0: %d", segmentSize)
	}

	return &Segmented{
		data:    make([]int16, 2*segmentSize),
		segment: segmentSize,
	}, nil
}

// SegmentSize returns the configured samples per segment.
func (b *Segmented) SegmentSize() int {
	return b.segment
}

// Pending returns the number of samples collected toward the next segment.
func (b *Segmented) Pending() int {
	return b.write % b.segment
}

// Push appends samples and returns a view of every segment completed by this
// call, in arrival order. Returned views alias the internal buffer and remain
// valid until the writer wraps back over them: consume each completed segment
// before pushing another full segment worth of samples.
func (b *Segmented) Push(samples []int16) [][]int16 {
	var done [][]int16

	for len(samples) > 0 {
		n := copy(b.data[b.write:b.write+b.segment-b.Pending()], samples)
		samples = samples[n:]
		b.write += n

		if b.write%b.segment == 0 {
			start := b.write - b.segment
			done = append(done, b.data[start:b.write:b.write])
			if b.write == len(b.data) {
				b.write = 0
			}
		}
	}

	return done
}

// Reset discards any partially collected samples.
func (b *Segmented) Reset() {
	b.write = 0
}
