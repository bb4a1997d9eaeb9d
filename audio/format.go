// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// SampleSize is the size in bytes of one sample as stored in a Sequence.
const SampleSize = 4

// SampleRates lists the sample rates a Format accepts, in Hz.
var SampleRates = []int{8000, 16000, 22050, 44100, 48000, 96000}

// Format describes the channel layout and sample rate of interleaved PCM.
// The zero value is not a valid Format; use NewFormat.
type Format struct {
	channelCount int
	sampleRate   int
}

// NewFormat returns a Format for channelCount channels at sampleRate Hz.
// channelCount must be at least 1 and sampleRate one of SampleRates.
func NewFormat(channelCount, sampleRate int) (Format, error) {
	if channelCount < 1 {
		return Format{}, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channelCount)
	}

	f := Format{channelCount: channelCount}
	if err := f.SetSampleRate(sampleRate); err != nil {
		return Format{}, err
	}

	return f, nil
}

// MustFormat is like NewFormat but panics on an invalid format.
// It is meant for package-level variables and tests.
func MustFormat(channelCount, sampleRate int) Format {
	f, err := NewFormat(channelCount, sampleRate)
	if err != nil {
		panic(err)
	}

	return f
}

func (f Format) ChannelCount() int { return f.channelCount }
func (f Format) SampleRate() int   { return f.sampleRate }

// SetSampleRate changes the sample rate. On error f is left unchanged.
func (f *Format) SetSampleRate(rate int) error {
	if !validSampleRate(rate) {
		return fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, rate)
	}

	f.sampleRate = rate
	return nil
}

// Valid reports whether f was built by NewFormat.
func (f Format) Valid() bool {
	return f.validate() == nil
}

func (f Format) Equal(other Format) bool { return f == other }

// Duration returns the play time of frameCount frames.
func (f Format) Duration(frameCount int) time.Duration {
	if f.sampleRate == 0 {
		return 0
	}

	seconds := float64(frameCount) / float64(f.sampleRate)
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// FrameCount returns the number of frames that play for d, rounded to the
// nearest frame. Negative durations yield 0.
func (f Format) FrameCount(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Round(d.Seconds() * float64(f.sampleRate)))
}

// ByteSize returns the storage size in bytes of frameCount frames.
func (f Format) ByteSize(frameCount int) int {
	return frameCount * f.channelCount * SampleSize
}

func (f Format) String() string {
	return fmt.Sprintf("%dch@%dHz", f.channelCount, f.sampleRate)
}

func validSampleRate(rate int) bool {
	return slices.Contains(SampleRates, rate)
}

func (f Format) validate() error {
	if f.channelCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, f.channelCount)
	}

	if !validSampleRate(f.sampleRate) {
		return fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, f.sampleRate)
	}

	return nil
}
