// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// FrameIterator is a random-access cursor over the frames of a Sequence.
// It moves ChannelCount samples per frame and measures distances in
// frames. Like a Frame, it goes stale when the Sequence reallocates.
type FrameIterator struct {
	seq    *Sequence
	pos    int // sample offset of the current frame
	stride int
	gen    uint64
}

// Index returns the frame index the iterator points at.
func (it FrameIterator) Index() int {
	if it.stride == 0 {
		return 0
	}

	return it.pos / it.stride
}

// Advance returns an iterator n frames further (backward if n < 0).
func (it FrameIterator) Advance(n int) FrameIterator {
	it.pos += n * it.stride
	return it
}

func (it FrameIterator) Next() FrameIterator { return it.Advance(1) }
func (it FrameIterator) Prev() FrameIterator { return it.Advance(-1) }

// Distance returns the number of frames from it to other. Iterators of
// different sequences are 0 frames apart.
func (it FrameIterator) Distance(other FrameIterator) int {
	if it.stride == 0 || !it.SameSequence(other) {
		return 0
	}

	return (other.pos - it.pos) / it.stride
}

// Equal reports whether both iterators point at the same frame of the same
// sequence.
func (it FrameIterator) Equal(other FrameIterator) bool {
	return it.seq == other.seq && it.pos == other.pos
}

// Before reports whether it points at an earlier frame than other of the
// same sequence.
func (it FrameIterator) Before(other FrameIterator) bool {
	return it.SameSequence(other) && it.pos < other.pos
}

// SameSequence reports whether both iterators were made by one Sequence.
func (it FrameIterator) SameSequence(other FrameIterator) bool {
	return it.seq == other.seq
}

// Valid reports whether the storage the iterator was made for is still in
// place.
func (it FrameIterator) Valid() bool {
	return it.seq != nil && it.gen == it.seq.gen
}

// Frame returns a view of the frame the iterator points at.
func (it FrameIterator) Frame() (Frame, error) {
	if !it.Valid() {
		return Frame{}, ErrStaleReference
	}

	if it.pos < 0 || it.pos+it.stride > len(it.seq.samples) {
		return Frame{}, fmt.Errorf("%w: frame %d of %d", ErrFrameIndexOutOfRange, it.Index(), it.seq.FrameCount())
	}

	return Frame{seq: it.seq, offset: it.pos, gen: it.gen}, nil
}
