package flac

import (
	"fmt"

	"github.com/ik5/audseq/audio"
)

var (
	ErrInvalidStream    = fmt.Errorf("%w: not a FLAC stream", audio.ErrCodecFormat)
	ErrChannelLayout    = fmt.Errorf("%w: frame channel count differs from stream info", audio.ErrCodecFormat)
	ErrUnsupportedDepth = fmt.Errorf("%w: unsupported FLAC bit depth", audio.ErrCodecFormat)
)
