// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"math"
	"time"

	"github.com/ik5/audseq/audio"
)

// Generator produces one sample value per call. Every channel of a frame
// gets the same value.
type Generator interface {
	// Next returns the value at the current time and advances one frame.
	Next() float32
	// Reset rewinds to the start time.
	Reset()
}

// oscillator is the clock shared by the periodic generators. Time is
// derived from the frame count so long runs do not accumulate drift.
type oscillator struct {
	amplitude float64
	frequency float64
	start     float64 // seconds
	step      float64 // seconds per frame
	n         int64
}

func newOscillator(f audio.Format, start time.Duration, amplitude, frequency float64) oscillator {
	step := 0.0
	if f.SampleRate() > 0 {
		step = 1 / float64(f.SampleRate())
	}

	return oscillator{
		amplitude: clampAmplitude(amplitude),
		frequency: frequency,
		start:     start.Seconds(),
		step:      step,
	}
}

func (o *oscillator) Reset() { o.n = 0 }

// tick returns the current time and advances the clock.
func (o *oscillator) tick() float64 {
	t := o.start + float64(o.n)*o.step
	o.n++

	return t
}

// Amplitude returns the effective peak value.
func (o *oscillator) Amplitude() float64 { return o.amplitude }

func clampAmplitude(a float64) float64 {
	return math.Min(math.Abs(a), 1)
}

// Fill writes g.Next() into every channel of each frame in [from, to).
// Both iterators must come from the same Sequence.
func Fill(g Generator, from, to audio.FrameIterator) error {
	if !from.SameSequence(to) {
		return audio.ErrIteratorMismatch
	}

	if !to.Valid() {
		return audio.ErrStaleReference
	}

	for it := from; it.Before(to); it = it.Next() {
		frame, err := it.Frame()
		if err != nil {
			return err
		}

		if err := frame.Fill(g.Next()); err != nil {
			return err
		}
	}

	return nil
}
