// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"slices"

	"github.com/ik5/audseq/audio"
)

// encodeChunkFrames is the number of frames handed to the encoder at once.
const encodeChunkFrames = 4096

// sampleRates are the rates of the Format set that MPEG audio can carry.
var sampleRates = []int{8000, 16000, 22050, 44100, 48000}

// Coder encodes mono or stereo sequences to MP3 with LAME. Stereo is
// written in joint-stereo mode.
//
// The encoder is linked with cgo when built with the lame tag; other builds
// return ErrEncoderUnavailable.
type Coder struct {
	Quality audio.Quality
}

// LameQuality maps q to the LAME algorithm quality, 0 being the best.
func LameQuality(q audio.Quality) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	switch q {
	case audio.QualityBest:
		return 0, nil
	case audio.QualityAcceptable:
		return 5, nil
	case audio.QualityFastest:
		return 9, nil
	}

	return 2, nil
}

func (c Coder) Encode(w io.Writer, seq *audio.Sequence) error {
	quality, err := LameQuality(c.Quality)
	if err != nil {
		return err
	}

	f := seq.Format()
	if f.ChannelCount() > 2 {
		return fmt.Errorf("%w: got %d", ErrTooManyChannels, f.ChannelCount())
	}

	if !slices.Contains(sampleRates, f.SampleRate()) {
		return fmt.Errorf("%w: %d Hz", ErrUnsupportedRate, f.SampleRate())
	}

	return encode(w, seq, quality)
}
