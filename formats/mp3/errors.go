package mp3

import (
	"fmt"

	"github.com/ik5/audseq/audio"
)

var (
	ErrInvalidStream      = fmt.Errorf("%w: not an MP3 stream", audio.ErrCodecFormat)
	ErrTooManyChannels    = fmt.Errorf("%w: MP3 holds at most 2 channels", audio.ErrFormatMismatch)
	ErrUnsupportedRate    = fmt.Errorf("%w: sample rate not supported by MP3", audio.ErrFormatMismatch)
	ErrEncoderUnavailable = fmt.Errorf("%w: MP3 encoding needs the lame build tag", audio.ErrNotImplemented)
)
