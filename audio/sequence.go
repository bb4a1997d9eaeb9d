// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
	"time"
)

// Sequence owns a growable store of interleaved float samples in [-1, 1]
// laid out frame after frame, channel 0 first.
//
// The storage length is always a multiple of the channel count. Frames and
// FrameIterators obtained from a Sequence borrow its storage: growing past
// Capacity reallocates it and makes every outstanding borrow stale.
//
// The zero value is not usable; use NewSequence. Only FrameCount,
// Capacity and Duration are defined on it, and they report zero.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	format  Format
	samples []float32
	// gen is bumped each time samples is reallocated.
	gen uint64
}

// NewSequence returns an empty Sequence of format f.
func NewSequence(f Format) (*Sequence, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	return &Sequence{format: f}, nil
}

// NewSequenceWithFrames returns a Sequence holding frameCount silent frames.
func NewSequenceWithFrames(f Format, frameCount int) (*Sequence, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	if frameCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, frameCount)
	}

	return &Sequence{
		format:  f,
		samples: make([]float32, frameCount*f.channelCount),
	}, nil
}

// NewSequenceWithDuration returns a Sequence holding the silent frames that
// play for d.
func NewSequenceWithDuration(f Format, d time.Duration) (*Sequence, error) {
	return NewSequenceWithFrames(f, f.FrameCount(d))
}

func (s *Sequence) Format() Format { return s.format }

// SetSampleRate changes the sample rate of the sequence without touching
// the samples.
func (s *Sequence) SetSampleRate(rate int) error {
	return s.format.SetSampleRate(rate)
}

func (s *Sequence) FrameCount() int {
	if s.format.channelCount == 0 {
		return 0
	}

	return len(s.samples) / s.format.channelCount
}

// Capacity returns the number of frames the storage holds without
// reallocating.
func (s *Sequence) Capacity() int {
	if s.format.channelCount == 0 {
		return 0
	}

	return cap(s.samples) / s.format.channelCount
}

func (s *Sequence) Duration() time.Duration {
	return s.format.Duration(s.FrameCount())
}

// Reserve makes room for at least frameCount frames. It never changes
// FrameCount; if it reallocates, outstanding Frames and iterators go stale.
func (s *Sequence) Reserve(frameCount int) error {
	if frameCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, frameCount)
	}

	s.reserveSamples(frameCount * s.format.channelCount)
	return nil
}

// ReserveDuration makes room for the frames that play for d.
func (s *Sequence) ReserveDuration(d time.Duration) error {
	return s.Reserve(s.format.FrameCount(d))
}

// SetFrameCount grows or truncates the sequence to exactly frameCount
// frames. New frames are silent. Truncation keeps the capacity.
//
// The returned iterator points at the first new frame, so ranging from it
// to End covers what was added. When truncating it equals End.
func (s *Sequence) SetFrameCount(frameCount int) (FrameIterator, error) {
	if frameCount < 0 {
		return FrameIterator{}, fmt.Errorf("%w: %d", ErrInvalidFrameCount, frameCount)
	}

	ch := s.format.channelCount
	oldLen := len(s.samples)
	newLen := frameCount * ch

	s.reserveSamples(newLen)
	s.samples = s.samples[:newLen]
	if newLen > oldLen {
		clear(s.samples[oldLen:])
	}

	return s.iteratorAt(min(oldLen, newLen)), nil
}

// SetDuration is SetFrameCount for the frames that play for d.
func (s *Sequence) SetDuration(d time.Duration) (FrameIterator, error) {
	return s.SetFrameCount(s.format.FrameCount(d))
}

// At returns a read-write view of frame index.
func (s *Sequence) At(index int) (Frame, error) {
	if index < 0 || index >= s.FrameCount() {
		return Frame{}, fmt.Errorf("%w: frame %d of %d", ErrFrameIndexOutOfRange, index, s.FrameCount())
	}

	return Frame{seq: s, offset: index * s.format.channelCount, gen: s.gen}, nil
}

// ConstAt returns a read-only view of frame index.
func (s *Sequence) ConstAt(index int) (ConstFrame, error) {
	f, err := s.At(index)
	if err != nil {
		return ConstFrame{}, err
	}

	return f.Const(), nil
}

// Data returns the interleaved samples from frame index to the end,
// aliasing the storage. index may equal FrameCount, yielding an empty slice.
// The slice must not be used after the sequence grows.
func (s *Sequence) Data(index int) ([]float32, error) {
	if index < 0 || index > s.FrameCount() {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrFrameIndexOutOfRange, index, s.FrameCount())
	}

	return s.samples[index*s.format.channelCount:], nil
}

// Copy copies up to count frames starting at frame offset into dst as
// interleaved samples, and returns the number of frames copied. Out of range
// offsets and counts are clamped, as is a dst too short for count frames.
func (s *Sequence) Copy(dst []float32, count, offset int) int {
	ch := s.format.channelCount
	offset, count = s.clampRange(offset, count)
	count = min(count, len(dst)/ch)

	copy(dst, s.samples[offset*ch:(offset+count)*ch])
	return count
}

// CopyChannels is Copy de-interleaving into one slice per channel. dst must
// hold at least ChannelCount slices; otherwise nothing is copied.
func (s *Sequence) CopyChannels(dst [][]float32, count, offset int) int {
	ch := s.format.channelCount
	if len(dst) < ch {
		return 0
	}

	offset, count = s.clampRange(offset, count)
	for c := range ch {
		count = min(count, len(dst[c]))
	}

	for i := range count {
		frame := s.samples[(offset+i)*ch:]
		for c := range ch {
			dst[c][i] = frame[c]
		}
	}

	return count
}

// AppendInterleaved appends the frames of an interleaved float block.
// len(pcm) must be a multiple of the channel count.
func (s *Sequence) AppendInterleaved(pcm []float32) error {
	if len(pcm)%s.format.channelCount != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrChannelCountMismatch, len(pcm), s.format.channelCount)
	}

	copy(s.grow(len(pcm)), pcm)
	return nil
}

// AppendDeinterleaved appends count frames taken from one slice per channel.
func (s *Sequence) AppendDeinterleaved(pcm [][]float32, count int) error {
	ch := s.format.channelCount
	if len(pcm) != ch {
		return fmt.Errorf("%w: %d channel slices for %d channels", ErrChannelCountMismatch, len(pcm), ch)
	}

	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, count)
	}

	for c := range ch {
		if len(pcm[c]) < count {
			return fmt.Errorf("%w: channel %d holds %d of %d frames", ErrInvalidFrameCount, c, len(pcm[c]), count)
		}
	}

	tail := s.grow(count * ch)
	for i := range count {
		for c := range ch {
			tail[i*ch+c] = pcm[c][i]
		}
	}

	return nil
}

// AppendPCM appends the frames of an interleaved block of PCM values,
// converting them with ValueToSample.
func AppendPCM[T Value](s *Sequence, pcm []T) error {
	if len(pcm)%s.format.channelCount != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrChannelCountMismatch, len(pcm), s.format.channelCount)
	}

	tail := s.grow(len(pcm))
	for i, v := range pcm {
		tail[i] = ValueToSample(v)
	}

	return nil
}

// AppendFrame appends a copy of f as a new last frame.
func (s *Sequence) AppendFrame(f ConstFrame) error {
	src, err := f.f.samples()
	if err != nil {
		return err
	}

	if len(src) != s.format.channelCount {
		return fmt.Errorf("%w: appending %d channels to %d", ErrChannelCountMismatch, len(src), s.format.channelCount)
	}

	copy(s.grow(len(src)), src)
	return nil
}

// AppendSequence appends every frame of other, which must share the format
// of s. On error s is unchanged.
func (s *Sequence) AppendSequence(other *Sequence) error {
	if other.format != s.format {
		return fmt.Errorf("%w: appending %v to %v", ErrFormatMismatch, other.format, s.format)
	}

	src := other.samples
	copy(s.grow(len(src)), src)
	return nil
}

// Subsequence returns a copy of at most count frames starting at frame
// index. The range is clamped to the available frames.
func (s *Sequence) Subsequence(index, count int) *Sequence {
	ch := s.format.channelCount
	index, count = s.clampRange(index, count)

	return &Sequence{
		format:  s.format,
		samples: append([]float32(nil), s.samples[index*ch:(index+count)*ch]...),
	}
}

// Clone returns a deep copy of s.
func (s *Sequence) Clone() *Sequence {
	return s.Subsequence(0, s.FrameCount())
}

// Begin returns an iterator on the first frame.
func (s *Sequence) Begin() FrameIterator { return s.iteratorAt(0) }

// End returns an iterator one past the last frame.
func (s *Sequence) End() FrameIterator { return s.iteratorAt(len(s.samples)) }

// All yields every frame with its index. Frames yielded before the loop
// body grows the sequence go stale like any other borrow.
func (s *Sequence) All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		ch := s.format.channelCount
		n, gen := s.FrameCount(), s.gen
		for i := range n {
			if !yield(i, Frame{seq: s, offset: i * ch, gen: gen}) {
				return
			}
		}
	}
}

func (s *Sequence) iteratorAt(pos int) FrameIterator {
	return FrameIterator{seq: s, pos: pos, stride: s.format.channelCount, gen: s.gen}
}

// grow extends the storage by n samples and returns the new tail.
func (s *Sequence) grow(n int) []float32 {
	oldLen := len(s.samples)
	if need := oldLen + n; need > cap(s.samples) {
		s.reserveSamples(max(need, 2*cap(s.samples)))
	}

	s.samples = s.samples[:oldLen+n]
	return s.samples[oldLen:]
}

func (s *Sequence) reserveSamples(n int) {
	if n <= cap(s.samples) {
		return
	}

	samples := make([]float32, len(s.samples), n)
	copy(samples, s.samples)
	s.samples = samples
	s.gen++
}

func (s *Sequence) clampRange(offset, count int) (int, int) {
	frames := s.FrameCount()
	offset = max(0, min(offset, frames))
	count = max(0, min(count, frames-offset))

	return offset, count
}
