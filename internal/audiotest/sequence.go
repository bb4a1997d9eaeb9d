// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"testing"

	"github.com/ik5/audseq/audio"
)

// SineSequence returns frames frames of a sine at frequency Hz and the given
// amplitude, identical on every channel.
func SineSequence(tb testing.TB, channels, sampleRate, frames int, frequency, amplitude float64) *audio.Sequence {
	tb.Helper()

	f, err := audio.NewFormat(channels, sampleRate)
	if err != nil {
		tb.Fatalf("NewFormat(%d, %d) error = %v", channels, sampleRate, err)
	}

	seq, err := audio.NewSequenceWithFrames(f, frames)
	if err != nil {
		tb.Fatalf("NewSequenceWithFrames() error = %v", err)
	}

	for i, frame := range seq.All() {
		t := float64(i) / float64(sampleRate)
		if err := frame.Fill(float32(amplitude * math.Sin(2*math.Pi*frequency*t))); err != nil {
			tb.Fatalf("Fill() error = %v", err)
		}
	}

	return seq
}
