// SPDX-License-Identifier: EPL-2.0

//go:build !(cgo && vorbisenc)

package vorbis

import (
	"io"

	"github.com/ik5/audseq/audio"
)

func encode(io.Writer, *audio.Sequence, float32) error {
	return ErrEncoderUnavailable
}
