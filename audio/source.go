// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultBufSize = 4096
	// maxEmptyReads bounds the reads returning neither data nor an error.
	maxEmptyReads = 100
)

// ReadAll drains src into a new Sequence and closes it.
//
// The stream format must be valid for a Sequence; otherwise ReadAll fails
// with ErrCodecFormat. Samples are appended in whole frames; a trailing
// partial frame is dropped. Read failures that are not already classified
// as codec errors are reported as ErrCodecIO.
func ReadAll(src Source) (seq *Sequence, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			seq, err = nil, fmt.Errorf("%w: close: %w", ErrCodecIO, cerr)
		}
	}()

	f, err := NewFormat(src.Channels(), src.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodecFormat, err)
	}

	seq = &Sequence{format: f}
	if sized, ok := src.(Sized); ok && sized.FrameCount() > 0 {
		seq.reserveSamples(sized.FrameCount() * f.channelCount)
	}

	ch := f.channelCount
	size := src.BufSize()
	if size <= 0 {
		size = defaultBufSize
	}
	size = max(size-size%ch, ch)
	buf := make([]float32, size)

	// carry holds the head of a frame split across two reads.
	carry := 0
	empty := 0
	for {
		got, rerr := src.ReadSamples(buf[carry:])
		n := carry + got
		whole := n - n%ch
		copy(seq.grow(whole), buf[:whole])
		carry = copy(buf, buf[whole:n])

		if errors.Is(rerr, io.EOF) {
			return seq, nil
		}
		if rerr != nil {
			return nil, classify(rerr)
		}

		if got == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("%w: %w", ErrCodecIO, io.ErrNoProgress)
			}
			continue
		}
		empty = 0
	}
}

func classify(err error) error {
	if errors.Is(err, ErrCodecIO) || errors.Is(err, ErrCodecFormat) || errors.Is(err, ErrCodecUnexpected) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrCodecIO, err)
}
