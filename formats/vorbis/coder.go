// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"

	"github.com/ik5/audseq/audio"
)

// encodeChunkFrames is the number of frames handed to the encoder at once.
const encodeChunkFrames = 1024

// Coder encodes sequences to Ogg Vorbis in variable bitrate mode with
// libvorbisenc.
//
// The encoder is linked with cgo when built with the vorbisenc tag; other
// builds return ErrEncoderUnavailable.
type Coder struct {
	Quality audio.Quality
}

// VBRQuality maps q to the libvorbisenc base quality in [0, 1].
func VBRQuality(q audio.Quality) (float32, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	switch q {
	case audio.QualityBest:
		return 1.0, nil
	case audio.QualityAcceptable:
		return 0.4, nil
	case audio.QualityFastest:
		return 0.1, nil
	}

	return 0.7, nil
}

func (c Coder) Encode(w io.Writer, seq *audio.Sequence) error {
	quality, err := VBRQuality(c.Quality)
	if err != nil {
		return err
	}

	return encode(w, seq, quality)
}
