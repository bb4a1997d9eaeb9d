package vorbis

import (
	"fmt"

	"github.com/ik5/audseq/audio"
)

var (
	ErrInvalidStream      = fmt.Errorf("%w: not an Ogg Vorbis stream", audio.ErrCodecFormat)
	ErrEncoderUnavailable = fmt.Errorf("%w: Vorbis encoding needs the vorbisenc build tag", audio.ErrNotImplemented)
)
