// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Format errors.
var (
	ErrInvalidChannelCount  = errors.New("invalid channel count")
	ErrInvalidSampleRate    = errors.New("invalid sample rate")
	ErrFormatMismatch       = errors.New("format mismatch")
	ErrChannelCountMismatch = errors.New("channel count mismatch")
	ErrInvalidFrameCount    = errors.New("invalid frame count")
)

// Access errors.
var (
	ErrFrameIndexOutOfRange   = errors.New("frame index out of range")
	ErrChannelIndexOutOfRange = errors.New("channel index out of range")

	// ErrStaleReference is returned when a Frame or FrameIterator is used
	// after the storage of its Sequence was reallocated or truncated below it.
	ErrStaleReference = errors.New("stale frame reference")

	ErrIteratorMismatch = errors.New("iterators of different sequences")
)

// Codec errors.
var (
	ErrCoderNotFound   = errors.New("no suitable coder found")
	ErrDecoderNotFound = errors.New("no suitable decoder found")
	ErrCodecFormat     = errors.New("codec format error")
	ErrCodecIO         = errors.New("codec I/O error")
	ErrCodecUnexpected = errors.New("codec unexpected error")
	ErrNotImplemented  = errors.New("not implemented")
	ErrInvalidQuality  = errors.New("invalid encoding quality")
)
