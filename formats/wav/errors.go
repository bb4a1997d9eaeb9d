package wav

import (
	"fmt"

	"github.com/ik5/audseq/audio"
)

var (
	ErrNotWavFile          = fmt.Errorf("%w: not a WAV file", audio.ErrCodecFormat)
	ErrMalformedChunks     = fmt.Errorf("%w: malformed RIFF chunks", audio.ErrCodecFormat)
	ErrMissingFormatChunk  = fmt.Errorf("%w: missing fmt chunk", audio.ErrCodecFormat)
	ErrMissingDataChunk    = fmt.Errorf("%w: missing data chunk", audio.ErrCodecFormat)
	ErrUnsupportedEncoding = fmt.Errorf("%w: unsupported WAV encoding", audio.ErrCodecFormat)
	ErrInvalidBlockAlign   = fmt.Errorf("%w: invalid block align", audio.ErrCodecFormat)
	ErrDataTooLarge        = fmt.Errorf("%w: data does not fit a WAV file", audio.ErrCodecFormat)
	ErrUnsupportedLayout   = fmt.Errorf("%w: layout does not fit a WAV header", audio.ErrFormatMismatch)
)
