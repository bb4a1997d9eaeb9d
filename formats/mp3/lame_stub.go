// SPDX-License-Identifier: EPL-2.0

//go:build !(cgo && lame)

package mp3

import (
	"io"

	"github.com/ik5/audseq/audio"
)

func encode(io.Writer, *audio.Sequence, int) error {
	return ErrEncoderUnavailable
}
