// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Frame is a read-write view of the ChannelCount samples of one time slice
// of a Sequence. It does not own the samples.
//
// A Frame stays valid until the Sequence reallocates its storage (Reserve,
// SetFrameCount or Append growing past Capacity) or is truncated below the
// frame. Any use after that fails with ErrStaleReference.
type Frame struct {
	seq    *Sequence
	offset int // index of the first sample in seq.samples
	gen    uint64
}

// ConstFrame is the read-only form of a Frame.
type ConstFrame struct {
	f Frame
}

// ChannelCount returns the number of samples in the frame.
func (f Frame) ChannelCount() int {
	if f.seq == nil {
		return 0
	}

	return f.seq.format.channelCount
}

// Const returns a read-only view of the same samples.
func (f Frame) Const() ConstFrame { return ConstFrame{f: f} }

// At returns the sample of channel ch.
func (f Frame) At(ch int) (float32, error) {
	s, err := f.channel(ch)
	if err != nil {
		return 0, err
	}

	return *s, nil
}

// Set stores v as the sample of channel ch.
func (f Frame) Set(ch int, v float32) error {
	s, err := f.channel(ch)
	if err != nil {
		return err
	}

	*s = v
	return nil
}

// Fill stores v in every channel.
func (f Frame) Fill(v float32) error {
	samples, err := f.samples()
	if err != nil {
		return err
	}

	for i := range samples {
		samples[i] = v
	}

	return nil
}

// Samples returns the frame samples as a slice aliasing the Sequence storage.
func (f Frame) Samples() ([]float32, error) {
	return f.samples()
}

// Assign copies every sample of src into f. Nothing is copied when the
// channel counts differ.
func (f Frame) Assign(src ConstFrame) error {
	from, err := src.f.samples()
	if err != nil {
		return err
	}

	to, err := f.samples()
	if err != nil {
		return err
	}

	if len(from) != len(to) {
		return fmt.Errorf("%w: assigning %d channels to %d", ErrChannelCountMismatch, len(from), len(to))
	}

	copy(to, from)
	return nil
}

func (f Frame) String() string { return f.Const().String() }

func (f Frame) channel(ch int) (*float32, error) {
	samples, err := f.samples()
	if err != nil {
		return nil, err
	}

	if ch < 0 || ch >= len(samples) {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrChannelIndexOutOfRange, ch, len(samples))
	}

	return &samples[ch], nil
}

func (f Frame) samples() ([]float32, error) {
	if f.seq == nil || f.gen != f.seq.gen {
		return nil, ErrStaleReference
	}

	end := f.offset + f.seq.format.channelCount
	if end > len(f.seq.samples) {
		return nil, ErrStaleReference
	}

	return f.seq.samples[f.offset:end:end], nil
}

func (f ConstFrame) ChannelCount() int { return f.f.ChannelCount() }

// At returns the sample of channel ch.
func (f ConstFrame) At(ch int) (float32, error) { return f.f.At(ch) }

// Samples returns a copy of the frame samples.
func (f ConstFrame) Samples() ([]float32, error) {
	samples, err := f.f.samples()
	if err != nil {
		return nil, err
	}

	return append([]float32(nil), samples...), nil
}

func (f ConstFrame) String() string {
	samples, err := f.f.samples()
	if err != nil {
		return "<" + err.Error() + ">"
	}

	var b strings.Builder
	for i, s := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%d]=%+.8f", i, s)
	}

	return b.String()
}

// ReadFrame converts the samples of f into dst, which must hold exactly
// f.ChannelCount() values.
func ReadFrame[T Value](f ConstFrame, dst []T) error {
	samples, err := f.f.samples()
	if err != nil {
		return err
	}

	if len(dst) != len(samples) {
		return fmt.Errorf("%w: reading %d channels into %d values", ErrChannelCountMismatch, len(samples), len(dst))
	}

	for i, s := range samples {
		dst[i] = SampleToValue[T](s)
	}

	return nil
}

// WriteFrame converts src into the samples of f. src must hold exactly
// f.ChannelCount() values.
func WriteFrame[T Value](f Frame, src []T) error {
	samples, err := f.samples()
	if err != nil {
		return err
	}

	if len(src) != len(samples) {
		return fmt.Errorf("%w: writing %d values into %d channels", ErrChannelCountMismatch, len(src), len(samples))
	}

	for i, v := range src {
		samples[i] = ValueToSample(v)
	}

	return nil
}
